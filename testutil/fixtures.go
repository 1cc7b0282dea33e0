package testutil

import (
	"strings"
	"testing"
)

// SampleMilestones is a milestones file with one structured block and one
// bare narrative block using the short month/day header form.
const SampleMilestones = `# Milestones

## 2025-12-18: Vision pipeline online

**What happened:** Face detection running on the robot camera feed at a steady 15 fps.
**Why it matters:** The robot can react to people instead of scripts.
**The moment:** It turned its head to follow me across the room. Commit ` + "`a1b2c3d`" + `.

## December 20: First servo motion

The head servos moved under software control for the first time. No structured
notes today, just joy and a lot of cable mess on the desk.
`

// SampleSession is a structured session report.
const SampleSession = `# Session: Robot Wakes Up

**Date:** 2025-12-20
**Status:** Completed
**Goal:** Bring up the servo controller end to end

## Accomplishments

- Wired the servo controller into the motion loop
- Robot head tracks a face target in real time

## Learnings

- Calibrate servo offsets before trusting reported angles
`

// SampleStream is a weekly stream file with one trivial note and one
// significant note.
const SampleStream = `# Week 51

## Saturday, December 20

**09:15** Coffee, reading servo datasheets.

**14:30** Breakthrough: head tracking works end to end. The robot follows my
face smoothly across the whole range of motion. Shipped the tracking branch.

## Sunday, December 21

**11:00** Cleaned up the repo.
`

// sampleJournalRaw uses ~~~ in place of code fences so the fixture can live
// in a raw string; SampleJournal swaps them back.
const sampleJournalRaw = `---
tags:
  - hardware
mood: excited
---

## 2025-12-20: The day it moved

I have been waiting for this since the parts arrived. Today the robot moved
its head on its own for the first time and the whole project felt real.

~~~python
controller.set_target(face.x, face.y)
~~~

Tomorrow: clean up the calibration code, commit ` + "`deadbee`" + ` needs a revert.
`

// SampleJournal is a multi-entry journal file with frontmatter and a fenced
// code block.
var SampleJournal = strings.ReplaceAll(sampleJournalRaw, "~~~", "```")

// SampleBlog is a blog drafts file.
const SampleBlog = `# Drafts

## Teaching a robot to see

**Status:** Draft
**Hook:** What happens when you give a hobby robot eyes?
**Angle:** Build log with the failures left in

Outline and scattered notes live here for now.
`

// SampleIdeas is an idea list file.
const SampleIdeas = `# Ideas

- Servo calibration deep dive: everything I got wrong about PWM ranges
- Why the robot needs a resting face
`

// SampleCuratedTimeline overrides the generated "First servo motion" entry
// with a hand-written richer version sharing the same id.
const SampleCuratedTimeline = `entries:
  - id: first-servo-motion-20251220
    date: "2025-12-20"
    title: First servo motion
    type: breakthrough
    summary: Hand-written summary that outranks the generated one.
    tags:
      - hardware
`

// CreateContentFixture builds a complete content tree covering every dialect
// plus a curated timeline override, and returns its root.
func CreateContentFixture(t *testing.T) string {
	t.Helper()
	root := CreateTempDir(t)

	WriteFile(t, root, "milestones/2025-milestones.md", SampleMilestones)
	WriteFile(t, root, "sessions/2025-12-20-robot-wakes-up.md", SampleSession)
	WriteFile(t, root, "stream/2025-W51.md", SampleStream)
	WriteFile(t, root, "journal/2025-12.md", SampleJournal)
	WriteFile(t, root, "blog/drafts.md", SampleBlog)
	WriteFile(t, root, "ideas/backlog.md", SampleIdeas)
	WriteFile(t, root, "curated/timeline.yaml", SampleCuratedTimeline)

	return root
}
