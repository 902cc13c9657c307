package main

import "pifp_protocol/sdk"

// saveProjectConfig writes the immutable record exactly once at registration.
func saveProjectConfig(cfg *ProjectConfig) {
	sdk.StateSetObject(projectConfigKey(cfg.ID), string(EncodeProjectConfig(cfg)))
}

// loadProjectConfig returns nil when the project was never registered.
func loadProjectConfig(id uint64) *ProjectConfig {
	ptr := sdk.StateGetObject(projectConfigKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	cfg, err := DecodeProjectConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt project config")
	}
	return cfg
}

// saveProjectState rewrites the small mutable record.
func saveProjectState(id uint64, state *ProjectState) {
	sdk.StateSetObject(projectStateKey(id), string(EncodeProjectState(state)))
}

// loadProjectState returns nil when no state record exists for the id.
func loadProjectState(id uint64) *ProjectState {
	ptr := sdk.StateGetObject(projectStateKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	state, err := DecodeProjectState([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt project state")
	}
	return state
}

// loadProjectPair fetches both halves and reverts when the project is unknown.
// Every mutating flow goes through here so missing ids fail uniformly.
func loadProjectPair(id uint64) (*ProjectConfig, *ProjectState) {
	cfg := loadProjectConfig(id)
	if cfg == nil {
		fail(ErrProjectNotFound)
	}
	state := loadProjectState(id)
	if state == nil {
		fail(ErrProjectNotFound)
	}
	return cfg, state
}

// isAcceptedToken scans the config's short token list, linear is fine at ten entries max.
func isAcceptedToken(cfg *ProjectConfig, token sdk.Asset) bool {
	for _, t := range cfg.AcceptedTokens {
		if t == token {
			return true
		}
	}
	return false
}
