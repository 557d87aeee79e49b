// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel runs independent per-row work on a fixed set of worker
// goroutines.
//
// The CPU shader evaluator splits each frame into horizontal bands and hands
// them to a WorkerPool. Every pixel depends only on immutable per-frame
// inputs, so bands can run in any order; ExecuteAll returns once all of
// them are done, keeping frames strictly sequential.
package parallel
