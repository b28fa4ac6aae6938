package timesheet

import "errors"

var ErrTimesheetNotFound = errors.New("timesheet not found")
