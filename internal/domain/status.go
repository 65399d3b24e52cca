package domain

import (
	"fmt"
	"strings"
)

// Status is the canonical booking status every backend spelling is normalized into
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Action is a staff action that drives a status transition
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
	ActionCancel   Action = "cancel"
	ActionRestore  Action = "restore"
)

// transitions maps a status to the actions it allows and the status each action leads to.
// COMPLETED has no entry: no action is offered for it.
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionConfirm: StatusConfirmed,
		ActionCancel:  StatusCancelled,
	},
	StatusConfirmed: {
		ActionComplete: StatusCompleted,
		ActionCancel:   StatusCancelled,
	},
	StatusCancelled: {
		ActionRestore: StatusPending,
	},
}

// actionOrder fixes the order in which actions are listed
var actionOrder = []Action{ActionConfirm, ActionComplete, ActionCancel, ActionRestore}

// AllStatuses lists the canonical statuses
var AllStatuses = []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// NormalizeStatus maps a raw backend status into the canonical vocabulary.
// Unrecognized values fall back to PENDING.
func NormalizeStatus(raw string) Status {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CONFIRMED":
		return StatusConfirmed
	case "COMPLETED":
		return StatusCompleted
	case "CANCELLED", "CANCELED":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// ParseStatus strictly parses a canonical status (case-insensitive)
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range AllStatuses {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// ParseAction parses a staff action name (case-insensitive)
func ParseAction(raw string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range actionOrder {
		if a == known {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, raw)
}

// ListActions returns the legal actions for the status, empty for COMPLETED
func ListActions(status Status) []Action {
	allowed := transitions[status]
	actions := make([]Action, 0, len(allowed))
	for _, a := range actionOrder {
		if _, ok := allowed[a]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}

// NextStatus returns the status the action leads to, or ErrIllegalTransition
func NextStatus(status Status, action Action) (Status, error) {
	target, ok := transitions[status][action]
	if !ok {
		return "", fmt.Errorf("%w: %s is not allowed from %s", ErrIllegalTransition, action, status)
	}
	return target, nil
}

// CanApply reports whether the action is legal from the status
func CanApply(status Status, action Action) bool {
	_, ok := transitions[status][action]
	return ok
}
