// Package pdf prints standalone HTML pages to PDF with headless Chrome.
//
// The browser is launched lazily on the first render through go-rod's
// launcher. ROD_BROWSER_BIN selects a preinstalled binary; ROD_NO_SANDBOX=1,
// CI=true or a custom binary disables the Chrome sandbox, which containers
// and CI runners need.
//
// A RodRenderer is not safe for concurrent use. Callers that render in
// parallel keep one renderer per worker.
package pdf
