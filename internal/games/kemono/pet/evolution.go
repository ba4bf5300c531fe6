package pet

import "fmt"

// EvolutionKind distinguishes the two evolution variants.
type EvolutionKind int

const (
	EvolutionFixed EvolutionKind = iota
	EvolutionMultiForm
)

// EvolutionSpec describes what a creature turns into at full affection.
//
// A Fixed spec always yields the same form. A MultiForm spec picks among
// forms keyed by usage tag, plus a dual form for a perfectly balanced
// upbringing; see resolve for the policy.
type EvolutionSpec struct {
	kind  EvolutionKind
	form  string
	forms map[string]string
	dual  string
}

// Fixed returns a single-form evolution.
func Fixed(form string) EvolutionSpec {
	return EvolutionSpec{kind: EvolutionFixed, form: form}
}

// MultiForm returns a tag-driven evolution with one form per tag and a dual form.
func MultiForm(forms map[string]string, dual string) EvolutionSpec {
	copied := make(map[string]string, len(forms))
	for tag, form := range forms {
		copied[tag] = form
	}
	return EvolutionSpec{kind: EvolutionMultiForm, forms: copied, dual: dual}
}

// Kind returns the variant.
func (e EvolutionSpec) Kind() EvolutionKind {
	return e.kind
}

// Forms lists every form this spec can produce, not counting the base appearance.
func (e EvolutionSpec) Forms() []string {
	if e.kind == EvolutionFixed {
		return []string{e.form}
	}
	out := make([]string, 0, len(Tags)+1)
	for _, tag := range Tags {
		out = append(out, e.forms[tag])
	}
	return append(out, e.dual)
}

func (e EvolutionSpec) validate() error {
	switch e.kind {
	case EvolutionFixed:
		if e.form == "" {
			return fmt.Errorf("%w: fixed evolution has no form", ErrInvalidArgument)
		}
	case EvolutionMultiForm:
		for _, tag := range Tags {
			if e.forms[tag] == "" {
				return fmt.Errorf("%w: multi-form evolution has no %q form", ErrInvalidArgument, tag)
			}
		}
		if e.dual == "" {
			return fmt.Errorf("%w: multi-form evolution has no dual form", ErrInvalidArgument)
		}
	default:
		return fmt.Errorf("%w: unknown evolution kind %d", ErrInvalidArgument, e.kind)
	}
	return nil
}

// resolve picks the evolved form. For MultiForm the checks run in order:
//  1. fire and sun both reach the threshold and are equal: dual form
//  2. fire reaches the threshold and beats sun: fire form
//  3. sun reaches the threshold and beats fire: sun form
//  4. otherwise the base appearance is kept
func (e EvolutionSpec) resolve(counters map[string]int, threshold int, base string) string {
	if e.kind == EvolutionFixed {
		return e.form
	}

	fire, sun := counters[TagFire], counters[TagSun]
	switch {
	case fire >= threshold && sun >= threshold && fire == sun:
		return e.dual
	case fire >= threshold && fire > sun:
		return e.forms[TagFire]
	case sun >= threshold && sun > fire:
		return e.forms[TagSun]
	default:
		return base
	}
}
