// Package config reads the YAML run file of the paleostress CLI and turns
// it into a ready-to-run inversion.
//
// A run file looks like:
//
//	search:
//	  method: Monte Carlo
//	  monteCarlo:
//	    nbRandomTrials: 5000
//	    seed: 7
//	criterion:
//	  name: gephart
//	  planeSearch: fibonacci
//	interactiveStressTensor:
//	  trendS1: 0
//	  plungeS1: 0
//	  trendS3: 90
//	  plungeS3: 0
//	  masterStress: Sigma1
//	  stressRatio: 0.5
//	datasets:
//	  - path: faults.yaml
//	output:
//	  report: report.json
//
// Search options are in radians, as the search package expects them;
// trends and plunges are in degrees. Missing keys keep their defaults and
// unknown keys are ignored. Dataset paths are relative to the run file.
package config
