// Package transition renders image-to-image transitions.
//
// # Overview
//
// Given two equally sized frames A and B, a Transition produces a finite,
// deterministic sequence of frames that morphs from A to B. Each frame is a
// pure function of its normalized progress, so frames may be rendered in
// any order or concurrently.
//
// # Quick Start
//
//	tr, err := transition.New(transition.Config{
//	    Kind:     transition.KindWipe,
//	    Duration: 2,
//	    FPS:      25,
//	    Easing:   easing.EaseInOut,
//	    Params:   transition.DefaultParams(transition.KindWipe),
//	})
//	if err != nil {
//	    return err
//	}
//	for frame, err := range tr.Frames(a, b) {
//	    if err != nil {
//	        return err
//	    }
//	    sink.WriteFrame(frame)
//	}
//
// # Rendering Model
//
// Frame i of n has progress t = i/(n−1) (1 when n is 1). The easing curve
// warps t into te, which the effect consumes. Effects either copy a region
// of B onto a clone of A (slider), blend the whole frame (fade, zoom,
// blur), or build a single-channel mask whose covered area grows with te
// and composite A and B through it.
//
// # Determinism
//
// Effects that use randomness draw it from a generator seeded with the
// configured seed, either once at construction (bar speeds, reveal order)
// or afresh on every frame (shape positions). Two transitions built from
// the same Config render bit-identical frames.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles
// are in degrees; positive sweeps turn clockwise on screen.
package transition
