// Package worksheet runs interval exercises stored in files.
//
// A worksheet is a list of exercises, each naming an operation (construct or
// identify), its argument array and either the expected answer or the kind of
// error the call must fail with. Worksheets are read from YAML, JSON or CSV and
// graded against a Solver, typically a *core.Service.
//
//	paths, _ := worksheet.Discover("./drills", "**/*.yaml")
//	report, err := worksheet.GradeAll(ctx, svc, paths, 4)
package worksheet

import (
	"fmt"
	"time"
)

// Op names the operation an exercise runs.
type Op string

const (
	OpConstruct Op = "construct"
	OpIdentify  Op = "identify"
)

// Exercise is a single graded call.
type Exercise struct {
	Name string   `json:"name,omitempty" yaml:"name,omitempty"`
	Op   Op       `json:"op" yaml:"op"`
	Args []string `json:"args" yaml:"args"`
	// Expect is the answer for a successful call.
	Expect string `json:"expect,omitempty" yaml:"expect,omitempty"`
	// Error is the expected error kind (see core.ErrorKind). It takes
	// precedence over Expect.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Label identifies the exercise in reports.
func (e Exercise) Label() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("%s %v", e.Op, e.Args)
}

// Sheet is a titled list of exercises.
type Sheet struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Exercises []Exercise `json:"exercises" yaml:"exercises"`
	// Path is the file the sheet was loaded from.
	Path string `json:"-" yaml:"-"`
}

// EventType represents the type of change to a worksheet file.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event reports a change to a worksheet file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s at %s", e.Type, e.Path, time.Unix(e.Timestamp, 0).Format(time.RFC3339))
}
