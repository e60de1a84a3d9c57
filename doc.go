// Package structbench is your hands-on playground for learning how linear
// data structures behave — from textbook Big-O tables to measured,
// chart-ready growth curves.
//
// 🚀 What is structbench?
//
//	An educational toolkit that brings together:
//		• Structures: generic Stack, Queue and singly linked List primitives
//		• Analysis: static Big-O lookup tables with plain-language explanations
//		• Benchmarks: a worst-case timing sweep across growing input sizes
//		• Inference: ratio-based classification of observed growth patterns
//		• Charts: predicted-vs-measured growth curves rendered to PNG
//
// ✨ Why choose structbench?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Honest numbers — worst-case setups, sample statistics, noise-aware bands
//   - Pure Go library core — charts and CLI live at the edges
//   - Advisory by design — growth classification is a heuristic, not a proof
//
// Under the hood, everything is organized under four subpackages plus a CLI:
//
//	structures/ — Stack, Queue and singly linked List implementations
//	complexity/ — Big-O tables, comparisons and operation-count predictions
//	perf/       — timing harness, benchmark runner & growth classifier
//	viz/        — PNG growth and comparison charts from benchmark output
//	cmd/        — the structbench command-line tool
//
// Quick ASCII example:
//
//	n:     100 ──▶ 1000 ──▶ 10000
//	time:  1.0x     9.8x     101x     ⇒ classified "~ O(n)"
//
// Dive into each package's doc.go for full examples and walkthroughs.
//
//	go get github.com/katalvlaran/structbench
package structbench
