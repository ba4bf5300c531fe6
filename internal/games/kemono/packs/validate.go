package packs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vovakirdan/kemono/internal/games/kemono/pet"
)

// Severity grades a validation finding.
type Severity int

const (
	SeverityWarning Severity = iota // The pack plays, but something is unreachable
	SeverityError                   // A session cannot be built from the pack
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Issue is one validation finding.
type Issue struct {
	Severity Severity
	Subject  string
	Message  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Severity, i.Subject, i.Message)
}

// HasErrors reports whether any issue is an error.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks a pack without building a session.
// Unresolved favourites are warnings; anything that would stop NewSession is an error.
func Validate(p Pack) []Issue {
	var issues []Issue
	errorf := func(subject, format string, args ...any) {
		issues = append(issues, Issue{SeverityError, subject, fmt.Sprintf(format, args...)})
	}
	warnf := func(subject, format string, args ...any) {
		issues = append(issues, Issue{SeverityWarning, subject, fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(p.ID) == "" {
		errorf("pack", "missing id")
	}
	if len(p.Raw.Creatures) == 0 {
		errorf("pack", "no base creatures")
	}
	if len(p.Raw.Items) == 0 {
		warnf("pack", "no items, nothing can be used")
	}

	def, err := p.Definition()
	if err != nil {
		errorf("items", "%v", err)
		return issues
	}
	cat, err := pet.NewCatalog(def.Items...)
	if err != nil {
		errorf("items", "%v", err)
		return issues
	}

	seen := make(map[string]bool)
	all := append(append([]pet.CreatureDef(nil), def.Base...), def.Hidden...)
	for i, d := range all {
		subject := "creature " + d.Name
		if d.Name == "" {
			errorf(fmt.Sprintf("creature #%d", i+1), "missing name")
			continue
		}
		if seen[d.Name] {
			errorf(subject, "duplicate name")
		}
		seen[d.Name] = true

		if _, err := pet.NewCreature(d, pet.DefaultRules(), nil); err != nil {
			errorf(subject, "%v", err)
		}
	}

	for _, fc := range append(append(p.Raw.Creatures[:0:0], p.Raw.Creatures...), p.Raw.Hidden...) {
		for tag := range fc.Evolution.Forms {
			if isKnownTag(tag) {
				continue
			}
			msg := fmt.Sprintf("unknown evolution tag %q", tag)
			if hint := pet.Suggest(tag, pet.Tags); hint != "" {
				msg += fmt.Sprintf(" (did you mean %q?)", hint)
			}
			errorf("creature "+fc.Name, "%s", msg)
		}
		if fc.Evolution.MultiForm() && fc.Evolution.Form != "" {
			warnf("creature "+fc.Name, "form %q is ignored for a multi-form evolution", fc.Evolution.Form)
		}
	}

	for _, fi := range pet.CheckFavorites(cat, all...) {
		warnf("creature "+fi.Creature, "%s", strings.TrimPrefix(fi.String(), fi.Creature+": "))
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity > issues[j].Severity
	})
	return issues
}

func isKnownTag(tag string) bool {
	for _, t := range pet.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func unknownPack(id string, ids []string) error {
	if hint := pet.Suggest(id, ids); hint != "" {
		return fmt.Errorf("packs: unknown pack %q (did you mean %q?)", id, hint)
	}
	return fmt.Errorf("packs: unknown pack %q (available: %s)", id, strings.Join(ids, ", "))
}
