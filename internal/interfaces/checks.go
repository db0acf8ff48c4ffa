package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile
// time, catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/rolodex/internal/exporters"
)

// Renderer implementations
var _ exporters.Renderer = exporters.VCard21Renderer{}
var _ exporters.Renderer = exporters.VCard30Renderer{}
var _ exporters.Renderer = exporters.CSVRenderer{}
