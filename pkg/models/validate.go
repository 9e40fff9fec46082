package models

import (
	"bytes"
	"encoding/json"
)

var documentKeys = []string{"project", "expenses", "tasks", "assets", "suppliers", "progressLog"}

var collectionKeys = []string{"expenses", "tasks", "assets", "suppliers", "progressLog"}

// IsValidDocument reports whether the payload is structurally a project
// document: an object with all six keys, a project with a string name and
// numeric total budget, and an array for every collection.
//
// This is a structural gate, not a full schema validation: collection
// elements are decoded later and are not inspected here. The guard never
// panics, whatever the payload is.
func IsValidDocument(payload []byte) bool {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(payload, &root); err != nil || root == nil {
		return false
	}

	for _, key := range documentKeys {
		if _, ok := root[key]; !ok {
			return false
		}
	}

	var project map[string]json.RawMessage
	if err := json.Unmarshal(root["project"], &project); err != nil || project == nil {
		return false
	}

	if jsonKind(project["name"]) != '"' {
		return false
	}
	if kind := jsonKind(project["totalBudget"]); kind != '0' && kind != '-' {
		return false
	}

	for _, key := range collectionKeys {
		if jsonKind(root[key]) != '[' {
			return false
		}
	}

	return true
}

// jsonKind returns the first significant byte of a raw JSON value, with
// all digits folded to '0'. Decoding into a Go value cannot distinguish
// "null" from a wrong type, so the guard inspects the raw token instead.
func jsonKind(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}

	c := trimmed[0]
	if c >= '0' && c <= '9' {
		return '0'
	}

	return c
}
