// Package paleostress infers the orientation and shape of a past stress
// field from the faults and fractures it left in rocks.
//
// 🚀 What is paleostress?
//
//	A batch inversion engine. Given measured fault planes with their
//	striations, extension fractures, stylolites and deformation bands, it
//	searches the four-dimensional space of stress tensors (three rotation
//	angles and the stress ratio R) for the tensor that best explains them:
//		• Datum kinds with per-kind cost and prediction
//		• Misfit criteria: weighted mean cost, Gephart minimum rotation
//		• Search strategies: Grid, Monte Carlo, Fibonacci lattice
//		• Parallel candidate evaluation with deterministic tie-breaks
//		• YAML run files, JSON reports and residual histograms
//
// ✨ Conventions
//
//   - Geographic frame is East, North, Up.
//   - Compression is negative; σ1 is the most compressive axis.
//   - Principal rotations have rows (S1, S3, S2) and stress ratio
//     R = (σ2 − σ3)/(σ1 − σ3), so the reference tensor is diag(−1, 0, −R).
//   - Library angles are radians; field readings and reports are degrees.
//
// Packages:
//
//	tensor/     Vector3, Matrix3, Rodrigues rotations, Jacobi eigen-solver, trend/plunge
//	geomeca/    hypothetical stress tensor and stress engines
//	data/       Datum kinds, field-notation plane geometry, input records
//	criteria/   SimpleMean and Gephart misfit criteria
//	search/     Grid, MonteCarlo and Fibonacci strategies around an estimate
//	inversion/  dataset + strategy + criterion, predictions
//	config/     YAML run files and datasets
//	report/     residual statistics, JSON report, histogram plot
//
// Quick example:
//
//	inv := inversion.New()
//	inv.AddData(set...)
//	inv.SetInteractiveSolution(geomeca.RotationFromAxes(0, 0, math.Pi/2, 0, geomeca.MasterSigma1), 0.5)
//	sol, err := inv.Run()
//
// or from the command line:
//
//	go install github.com/katalvlaran/paleostress/cmd/paleostress@latest
//	paleostress run --config run.yaml --plot residuals.png
package paleostress
