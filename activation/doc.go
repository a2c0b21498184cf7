// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides neural network activation functions and the
// batched forward/backward passes a layer runs with them.
//
// # Overview
//
// This package contains:
//   - Activations: Identity, Sigmoid, ReLU, LeakyReLU, ELU, Tanh, TanhP1M2, Softmax
//   - Evaluation: Forward, Backward (and the allocating Apply, Gradient)
//   - Registry: Kind, ParseKind, New for name-based configuration
//   - Utilities: LabelVector, Rescale, GradCheck
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/activ/activation"
//	    "github.com/born-ml/activ/parallel"
//	)
//
//	func main() {
//	    a := activation.Batch[float32]{{-1, 0, 2}, {0.5, 3, -2}}
//	    y := activation.NewBatch[float32](2, 3)
//
//	    // Forward pass, one goroutine chunk per group of samples
//	    activation.Forward(y, a, activation.Sigmoid[float32]{}, parallel.DefaultConfig().ForFunc())
//	}
//
// # Derivatives
//
// Every activation expresses its derivative in terms of its output y = F(x).
// Backward therefore needs only the forward output and the upstream delta:
//
//	delta := activation.NewBatch[float32](2, 3)
//	activation.Backward(upstream, y, delta, activation.Sigmoid[float32]{}, nil)
//
// Softmax couples every output to every other output. It reports OneHot() == false
// and Backward contracts the upstream delta with the full Jacobian row instead of
// multiplying elementwise.
//
// # Parallelism
//
// Forward and Backward accept any parallel.ForFunc. Samples are independent,
// so results are bit-identical whether the batch is processed sequentially or
// across goroutines. A nil ForFunc runs sequentially.
//
// # Preconditions
//
// Shapes and indices are not validated and NaN/Inf inputs propagate silently.
// Callers check shapes once, at layer construction time.
package activation
