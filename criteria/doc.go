// Package criteria aggregates per-datum misfits into the scalar minimized by
// the search strategies.
//
//   - SimpleMean: weighted mean of datum costs.
//   - Gephart: sum over faults of the minimum rotation reconciling the
//     measured plane and striation with the candidate stress tensor.
//
// Both support keeping only the N best-fitting data. Every criterion is safe
// for concurrent Value calls: they read the dataset and build their engine
// and random streams per call.
package criteria
