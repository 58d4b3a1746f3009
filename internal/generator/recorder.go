// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generator

import "time"

// Stage and outcome labels passed to a Recorder.
const (
	StageContent = "content"
	StageCode    = "code"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder receives one observation per provider attempt and one per
// stored website.
type Recorder interface {
	ObserveStage(stage, provider, outcome string, elapsed time.Duration)
	WebsiteCreated(source string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveStage(string, string, string, time.Duration) {}
func (nopRecorder) WebsiteCreated(string)                              {}
