// Copyright 2026 The CPS Academy Authors
// SPDX-License-Identifier: Apache-2.0

// Package courseui implements the terminal course browser: the
// catalog list with fuzzy filtering and the course detail viewer with
// its module accordion and video activation.
package courseui

// ViewerPhase is the closed set of accordion states in the course
// detail viewer.
type ViewerPhase int

const (
	// PhaseCollapsed: no module expanded, no video active.
	PhaseCollapsed ViewerPhase = iota

	// PhaseModuleExpanded: exactly one module is open.
	PhaseModuleExpanded

	// PhaseVideoActive: a module is open and its video is playing.
	PhaseVideoActive
)

// ViewerState is the accordion state of the course detail viewer. At
// most one module is expanded at a time, and a video can only be
// active inside the currently expanded module.
//
// The zero value is the collapsed state, which is also the state a
// viewer resets to when its course changes.
type ViewerState struct {
	phase    ViewerPhase
	moduleID int
	videoURL string
}

// Phase returns the current accordion phase.
func (state ViewerState) Phase() ViewerPhase {
	return state.phase
}

// ExpandedModule returns the ID of the expanded module and whether one
// is expanded.
func (state ViewerState) ExpandedModule() (int, bool) {
	if state.phase == PhaseCollapsed {
		return 0, false
	}
	return state.moduleID, true
}

// ActiveVideo returns the URL of the playing video and whether one is
// active.
func (state ViewerState) ActiveVideo() (string, bool) {
	if state.phase != PhaseVideoActive {
		return "", false
	}
	return state.videoURL, true
}

// ToggleModule opens a module, closes it if it is already open, or
// switches to it from another module. Switching away from (or closing)
// a module always stops any active video — a video can never outlive
// its module's expansion.
func (state ViewerState) ToggleModule(moduleID int) ViewerState {
	if expanded, ok := state.ExpandedModule(); ok && expanded == moduleID {
		return ViewerState{}
	}
	return ViewerState{phase: PhaseModuleExpanded, moduleID: moduleID}
}

// PlayVideo activates a module's video. A no-op unless that module is
// currently expanded and the URL is non-empty: collapsed modules and
// video-less modules cannot start playback, so the rendered player
// always sits inside an open accordion section.
func (state ViewerState) PlayVideo(moduleID int, videoURL string) ViewerState {
	expanded, ok := state.ExpandedModule()
	if !ok || expanded != moduleID || videoURL == "" {
		return state
	}
	return ViewerState{phase: PhaseVideoActive, moduleID: moduleID, videoURL: videoURL}
}

// StopVideo returns to the expanded-module state, keeping the module
// open. A no-op when no video is active.
func (state ViewerState) StopVideo() ViewerState {
	if state.phase != PhaseVideoActive {
		return state
	}
	return ViewerState{phase: PhaseModuleExpanded, moduleID: state.moduleID}
}

// Reset returns the collapsed state. Called when the viewer's course
// changes so state from one course never leaks into another.
func (state ViewerState) Reset() ViewerState {
	return ViewerState{}
}
