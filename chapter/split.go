package chapter

import (
	"github.com/pkg/errors"

	"github.com/DishanH/Pali-sub002/segment"
)

// Plan names a chapter and the first section number it owns. A chapter
// runs until the next plan's start; the last one takes the rest.
type Plan struct {
	ID        string
	PaliTitle string
	Start     int
}

// SplitByPlan distributes continuously numbered sections over the
// chapter plan. Sections arrive ordered from the segmenter, so a plain
// cursor walk is enough; a section numbered before the first plan start
// means the plan and the source disagree and is an error.
func SplitByPlan(sections []segment.Section, plans []Plan) ([]Chapter, error) {
	if len(plans) == 0 {
		return nil, errors.New("empty chapter plan")
	}
	if len(sections) == 0 {
		return nil, errors.New("no sections to split")
	}
	if sections[0].Number < plans[0].Start {
		return nil, errors.Errorf("section %d precedes first planned chapter start %d",
			sections[0].Number, plans[0].Start)
	}

	chapters := make([]Chapter, 0, len(plans))
	cursor := 0
	for i, plan := range plans {
		end := -1 // open-ended for the last chapter
		if i+1 < len(plans) {
			end = plans[i+1].Start - 1
		}

		var part []segment.Section
		for cursor < len(sections) && (end < 0 || sections[cursor].Number <= end) {
			part = append(part, sections[cursor])
			cursor++
		}
		if len(part) == 0 {
			return nil, errors.Errorf("chapter %s has no sections in range starting %d",
				plan.ID, plan.Start)
		}
		chapters = append(chapters, New(plan.ID, plan.PaliTitle, part))
	}
	return chapters, nil
}
