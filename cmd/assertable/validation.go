package main

import (
	"fmt"
	"strings"
)

// flagValue represents a flag name and its current value for validation.
type flagValue struct {
	name  string
	value string
}

// flagSet represents a flag that is either set (true) or not set (false).
type flagSet struct {
	name  string
	isSet bool
}

// requireArgCount returns an error unless args has exactly n entries,
// counting the operator.
func requireArgCount(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d (usage: %s)", args[0], n-1, len(args)-1, usage)
	}
	return nil
}

// requireNoneOf returns an error naming every set flag that cannot be used with what.
func requireNoneOf(what string, flags ...flagSet) error {
	var set []string
	for _, f := range flags {
		if f.isSet {
			set = append(set, f.name)
		}
	}
	if len(set) == 0 {
		return nil
	}
	return fmt.Errorf("%s cannot be used with %s", strings.Join(set, ", "), what)
}

// requireValue returns an error if dependent is set but f does not have the value want.
func requireValue(dependent flagSet, f flagValue, want string) error {
	if dependent.isSet && f.value != want {
		return fmt.Errorf("%s requires %s %s", dependent.name, f.name, want)
	}
	return nil
}
