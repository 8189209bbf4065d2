// Package cboost provides the monitoring-and-stopping subsystem of a
// component-wise boosting trainer.
//
// Component-wise boosting fits an additive model one weak ("base") learner
// per round. This module records per-round diagnostics, decides when
// training should halt and renders an aligned console status table, without
// the training loop knowing which concrete stopping rules are active.
//
// # Packages
//
//   - monitor: the logger framework (iteration count, in-sample risk,
//     held-out risk, elapsed time) and the Registry aggregating them
//   - loss: the loss-evaluator contract and standard losses
//   - learner: the base-learner contract and a least-squares learner
//   - plotting: risk-over-rounds curves via gonum/plot
//   - pkg/errors, pkg/log: structured errors and logging
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/cboost-go/cboost/loss"
//	    "github.com/cboost-go/cboost/monitor"
//	)
//
//	func main() {
//	    registry := monitor.NewRegistry()
//	    if err := registry.Register("iterations", monitor.NewIterationLogger(true, 100)); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := registry.Register("train_risk", monitor.NewTrainRiskLogger(true, loss.Quadratic{}, 1e-5)); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(registry.StatusHeader())
//	    for round := 1; ; round++ {
//	        // ... select a base learner, update the prediction ...
//	        // registry.LogCurrentStep(round, response, prediction, selected, offset, learningRate)
//	        fmt.Println(registry.PrintStatusLine())
//	        if registry.ShouldStop() {
//	            break
//	        }
//	    }
//	}
//
// The training loop owns every collaborator the loggers borrow (loss
// evaluators, base learners, held-out data); those objects must stay valid
// for the whole session and are never mutated by this module.
package cboost
