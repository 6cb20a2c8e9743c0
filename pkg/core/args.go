package core

import "fmt"

// ConstructArgs runs Construct on [interval, startNote, direction?].
// The direction defaults to Ascending.
func ConstructArgs(args []string) (string, error) {
	dir, err := splitArgs(args)
	if err != nil {
		return "", err
	}
	return Construct(args[0], args[1], dir)
}

// IdentifyArgs runs Identify on [startNote, endNote, direction?].
// The direction defaults to Ascending.
func IdentifyArgs(args []string) (string, error) {
	dir, err := splitArgs(args)
	if err != nil {
		return "", err
	}
	return Identify(args[0], args[1], dir)
}

func splitArgs(args []string) (Direction, error) {
	if len(args) < 2 || len(args) > 3 {
		return "", fmt.Errorf("%w: got %d, want 2 or 3", ErrArity, len(args))
	}
	if len(args) == 2 {
		return Ascending, nil
	}
	return ParseDirection(args[2])
}
