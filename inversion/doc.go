// Package inversion drives a paleostress inversion: it owns the dataset,
// the search strategy and the misfit criterion, runs the search from the
// interactive estimate, and predicts what each datum would show under the
// resulting stress tensor.
//
//	inv := inversion.New(inversion.WithStrategy(mc))
//	inv.AddData(set...)
//	inv.SetInteractiveSolution(rot, 0.5)
//	sol, err := inv.Run()
//
// A second Run continues from the best solution of the first; Reset
// starts over.
package inversion
