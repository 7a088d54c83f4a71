package chatmd

import (
	"errors"

	"github.com/alnah/go-chatmd/internal/assets"
	"github.com/alnah/go-chatmd/internal/pdf"
	"github.com/alnah/go-chatmd/internal/pipeline"
)

// Sentinel errors for library operations. Errors raised by the rendering
// backends are the same values, so errors.Is works across package lines.
var (
	ErrInvalidMode = errors.New("invalid output mode")
	ErrPageRender  = pipeline.ErrPageRender
	ErrHighlight   = pipeline.ErrHighlight

	// Page settings validation errors.
	ErrInvalidPageSize = pdf.ErrInvalidPageSize
	ErrInvalidMargin   = pdf.ErrInvalidMargin

	// Browser errors.
	ErrBrowserConnect = pdf.ErrBrowserConnect
	ErrPageCreate     = pdf.ErrPageCreate
	ErrPageLoad       = pdf.ErrPageLoad
	ErrPDFGeneration  = pdf.ErrPDFGeneration

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrReadStyle        = errors.New("failed to read style file")
)
