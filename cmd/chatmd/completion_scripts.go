package main

import (
	"fmt"
	"io"
	"strings"
)

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for chatmd\n")
	b.WriteString("shopt -s extglob\n\n")
	b.WriteString("_chatmd_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\") $(compgen -f -X '!%s' -- \"$cur\"))\n",
		strings.Join(commandNames(cmds), " "), bashGlob(messageFilePattern()))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n")
	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", strings.Join(bashCommandPatterns(c), "|"))
		writeBashCommand(&b, c)
		b.WriteString("        ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _chatmd_completions chatmd\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// bashCommandPatterns returns the case patterns selecting c. A message file
// in first position is the convert shorthand.
func bashCommandPatterns(c commandDef) []string {
	patterns := []string{c.Name}
	if c.TakesFiles {
		patterns = append(patterns, strings.Split(c.FilePattern, ",")...)
		patterns = append(patterns, stdinArg)
	}
	return patterns
}

func writeBashCommand(b *strings.Builder, c commandDef) {
	if len(c.Flags) > 0 {
		b.WriteString("        case \"$prev\" in\n")
		for _, f := range c.Flags {
			if f.Type == flagBool {
				continue
			}
			fmt.Fprintf(b, "        %s)\n", strings.Join(flagWords(f), "|"))
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(f.Values, " "))
			case flagFile:
				fmt.Fprintf(b, "            COMPREPLY=($(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", bashGlob(f.FileGlob))
			case flagDir:
				b.WriteString("            COMPREPLY=($(compgen -d -- \"$cur\"))\n")
			default:
				b.WriteString("            COMPREPLY=()\n")
			}
			b.WriteString("            return\n")
			b.WriteString("            ;;\n")
		}
		b.WriteString("        esac\n")
		b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
		fmt.Fprintf(b, "            COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(allFlagWords(c.Flags), " "))
		b.WriteString("            return\n")
		b.WriteString("        fi\n")
	}

	switch {
	case c.TakesFiles:
		fmt.Fprintf(b, "        COMPREPLY=($(compgen -f -X '!%s' -- \"$cur\") $(compgen -d -- \"$cur\"))\n", bashGlob(c.FilePattern))
	case len(c.Args) > 0:
		fmt.Fprintf(b, "        COMPREPLY=($(compgen -W \"%s\" -- \"$cur\"))\n", strings.Join(c.Args, " "))
	default:
		b.WriteString("        COMPREPLY=()\n")
	}
}

// bashGlob turns "*.yaml,*.yml" into the extglob "*.@(yaml|yml)".
func bashGlob(glob string) string {
	return "*.@(" + strings.Join(globExtensions(glob), "|") + ")"
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef chatmd\n")
	b.WriteString("# zsh completion for chatmd\n\n")
	b.WriteString("_chatmd() {\n")
	b.WriteString("  local -a commands\n")
	b.WriteString("  commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    '%s:%s'\n", c.Name, zshQuote(c.Desc))
	}
	b.WriteString("  )\n\n")
	b.WriteString("  if (( CURRENT == 2 )); then\n")
	b.WriteString("    _describe -t commands 'chatmd command' commands\n")
	fmt.Fprintf(&b, "    _files -g '%s'\n", zshGlob(messageFilePattern()))
	b.WriteString("    return\n")
	b.WriteString("  fi\n\n")
	b.WriteString("  local cmd=${words[2]}\n")
	fmt.Fprintf(&b, "  case $cmd in\n    %s) cmd=convert ;;\n  esac\n", strings.Join(append(strings.Split(messageFilePattern(), ","), stdinArg), "|"))
	b.WriteString("  (( CURRENT-- ))\n")
	b.WriteString("  shift words\n\n")
	b.WriteString("  case $cmd in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "    %s)\n", c.Name)
		writeZshCommand(&b, c)
		b.WriteString("      ;;\n")
	}
	b.WriteString("  esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_chatmd \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func writeZshCommand(b *strings.Builder, c commandDef) {
	var specs []string
	for _, f := range c.Flags {
		specs = append(specs, zshFlagSpec(f))
	}
	switch {
	case c.TakesFiles:
		specs = append(specs, fmt.Sprintf(`'*:input:_files -g "%s"'`, zshGlob(c.FilePattern)))
	case len(c.Args) > 0:
		specs = append(specs, fmt.Sprintf("'1:argument:(%s)'", strings.Join(c.Args, " ")))
	}

	if len(specs) == 0 {
		b.WriteString("      _message 'no arguments'\n")
		return
	}
	b.WriteString("      _arguments -s \\\n")
	for i, spec := range specs {
		b.WriteString("        " + spec)
		if i < len(specs)-1 {
			b.WriteString(" \\")
		}
		b.WriteString("\n")
	}
}

// zshFlagSpec renders one _arguments spec, e.g.
// '(-o --output)'{-o,--output}'[output file or directory]:directory:_files -/'.
func zshFlagSpec(f flagDef) string {
	action := ""
	switch f.Type {
	case flagBool:
	case flagEnum:
		action = ":" + f.Long + ":(" + strings.Join(f.Values, " ") + ")"
	case flagFile:
		action = `:file:_files -g "` + zshGlob(f.FileGlob) + `"`
	case flagDir:
		action = ":directory:_files -/"
	default:
		action = ":" + f.Long + ": "
	}

	body := "[" + zshQuote(zshBracket(f.Desc)) + "]" + zshQuote(action)
	prefix := ""
	if f.Repeatable {
		prefix = "*"
	}

	if f.Short == "" {
		return "'" + prefix + "--" + f.Long + body + "'"
	}
	if f.Repeatable {
		return "'*'{-" + f.Short + ",--" + f.Long + "}'" + body + "'"
	}
	return "'(-" + f.Short + " --" + f.Long + ")'{-" + f.Short + ",--" + f.Long + "}'" + body + "'"
}

// zshGlob turns "*.yaml,*.yml" into "*.(yaml|yml)".
func zshGlob(glob string) string {
	return "*.(" + strings.Join(globExtensions(glob), "|") + ")"
}

// zshQuote escapes s for use inside a single-quoted zsh word.
func zshQuote(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

// zshBracket escapes the brackets that delimit an _arguments description.
func zshBracket(s string) string {
	return strings.NewReplacer("[", `\[`, "]", `\]`).Replace(s)
}

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for chatmd\n\n")
	b.WriteString("function __fish_chatmd_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_chatmd_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c chatmd -f\n")

	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c chatmd -n __fish_chatmd_needs_command -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}
	fmt.Fprintf(&b, "complete -c chatmd -n __fish_chatmd_needs_command -a '%s'\n", fishSuffixes(messageFilePattern()))

	for _, c := range cmds {
		cond := fmt.Sprintf("'__fish_chatmd_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			line := "complete -c chatmd -n " + cond
			if f.Short != "" {
				line += " -s " + f.Short
			}
			line += " -l " + f.Long
			switch f.Type {
			case flagBool:
			case flagEnum:
				line += " -x -a '" + strings.Join(f.Values, " ") + "'"
			case flagFile:
				line += " -r -a '" + fishSuffixes(f.FileGlob) + "'"
			case flagDir:
				line += " -x -a '(__fish_complete_directories)'"
			default:
				line += " -x"
			}
			line += " -d '" + fishQuote(f.Desc) + "'"
			b.WriteString(line + "\n")
		}
		switch {
		case c.TakesFiles:
			fmt.Fprintf(&b, "complete -c chatmd -n %s -a '%s'\n", cond, fishSuffixes(c.FilePattern))
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "complete -c chatmd -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// fishSuffixes builds a command substitution completing files by extension.
func fishSuffixes(glob string) string {
	var calls []string
	for _, ext := range globExtensions(glob) {
		calls = append(calls, "__fish_complete_suffix ."+ext)
	}
	return "(" + strings.Join(calls, "; ") + ")"
}

// fishQuote escapes s for use inside a single-quoted fish string.
func fishQuote(s string) string {
	return strings.NewReplacer(`\`, `\\`, "'", `\'`).Replace(s)
}

// ---------------------------------------------------------------------------
// PowerShell
// ---------------------------------------------------------------------------

func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# powershell completion for chatmd\n\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName chatmd -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")
	b.WriteString("    $elements = @($commandAst.CommandElements | ForEach-Object { $_.ToString() })\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psQuote(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, psList(allFlagWords(c.Flags)))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $arguments = @{\n")
	for _, c := range cmds {
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "        '%s' = @(%s)\n", c.Name, psList(c.Args))
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $values = @{\n")
	for _, c := range cmds {
		for _, f := range c.Flags {
			if f.Type != flagEnum {
				continue
			}
			for _, word := range flagWords(f) {
				fmt.Fprintf(&b, "        '%s' = @(%s)\n", word, psList(f.Values))
			}
		}
	}
	b.WriteString("    }\n\n")

	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.GetEnumerator() | Where-Object { $_.Key -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_.Key, $_.Key, 'ParameterValue', $_.Value)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    $cmd = $elements[1]\n")
	b.WriteString("    if (-not $commands.Contains($cmd)) { $cmd = 'convert' }\n")
	b.WriteString("    $prev = if ($wordToComplete) { $elements[-2] } else { $elements[-1] }\n\n")

	b.WriteString("    if ($values.ContainsKey($prev)) {\n")
	b.WriteString("        $values[$prev] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($wordToComplete -like '-*') {\n")
	b.WriteString("        $flags[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($arguments.ContainsKey($cmd)) {\n")
	b.WriteString("        $arguments[$cmd] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// psList renders words as a PowerShell array body: 'a', 'b'.
func psList(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = "'" + psQuote(word) + "'"
	}
	return strings.Join(quoted, ", ")
}

// psQuote escapes s for use inside a single-quoted PowerShell string.
func psQuote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
