package main

import (
	"github.com/posener/complete"

	"github.com/hmiko/untitled/internal/manifest"
)

// browserPredictor completes --browser flag values.
func browserPredictor() complete.Predictor {
	return complete.PredictSet(manifest.BrowserFirefox, manifest.BrowserLibrewolf)
}
