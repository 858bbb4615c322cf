/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package scenario

import (
	"github.com/go-logr/logr"
)

// LogObserver logs the start and outcome of every step.
type LogObserver struct {
	log logr.Logger
}

// NewLogObserver returns an observer that logs to log.
func NewLogObserver(log logr.Logger) *LogObserver {
	return &LogObserver{
		log: log,
	}
}

func (o *LogObserver) StepStarted(step Step) {
	o.log.Info("running step", "step", step.Name, "description", step.Description)
}

func (o *LogObserver) StepFinished(result StepResult) {
	switch result.Result {
	case ResultPassed:
		o.log.Info("step passed", "step", result.Name, "duration", result.Duration)
	case ResultSkipped:
		o.log.Info("step skipped", "step", result.Name, "reason", result.Reason)
	default:
		o.log.Error(result.Err, "step did not pass", "step", result.Name, "result", result.Result, "duration", result.Duration)
	}
}
