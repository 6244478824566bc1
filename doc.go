// Package elnet fits the full regularization path of elastic-net linear
// regression by cyclic coordinate descent with warm starts.
//
// 🚀 What is elnet?
//
//	Given a design matrix, a response and a decreasing sequence of
//	regularization strengths (lambda), elnet produces one sparse
//	coefficient vector per lambda:
//	  • L1 + L2 penalties mixed by Alpha (1 = lasso, 0 = ridge)
//	  • dense and compressed-column sparse design matrices
//	  • covariance-update strategy: cross-products cached per active
//	    feature, so each coordinate step costs O(p), not O(n·p)
//	  • warm starts: each lambda resumes from the previous solution
//	  • per-feature penalty factors, box constraints and inclusion flags
//
// ✨ Why elnet?
//
//   - Deterministic — iteration-count based stopping, no wall clocks,
//     no randomness; identical inputs give identical paths.
//   - Strict sentinels — configuration failures are errors.Is-matchable;
//     per-lambda outcomes travel as Status codes, never panics.
//   - Single-threaded by contract — one Fit call owns all of its state;
//     run independent fits concurrently at the caller's grain.
//
// ⚙️ Usage:
//
//	view, _ := designmat.NewDense(x)             // or designmat.NewCSC(...)
//	mom, _ := designmat.ComputeMoments(view, w, true)
//	g, _ := designmat.Gradient(view, w, ys, mom)
//
//	cfg := elnet.DefaultConfig()
//	cfg.Matrix, cfg.W, cfg.G = view, w, g
//	cfg.Xm, cfg.Xs, cfg.Xv = mom.Xm, mom.Xs, mom.Xv
//	res, err := elnet.Fit(cfg)
//
// The result holds one FitRecord per solved lambda: the lambda value, the
// active coefficients (standardized space), the nonzero count and the
// fraction of deviance explained. Convert back to the original scale with
// Denormalize.
//
// Inputs are assumed validated and standardized by the caller (moments are
// supplied, not derived here); package designmat provides the helpers.
package elnet
