package domain

// NounCategory groups nouns by what kind of predicate they can fill.
// Topics restrict their noun slot to a subset of categories; a topic
// with no restriction accepts every category.
type NounCategory string

const (
	NounCategoryPerson NounCategory = "PERSON"
	NounCategoryJob    NounCategory = "JOB"
	NounCategoryPlace  NounCategory = "PLACE"
	NounCategoryThing  NounCategory = "THING"
	NounCategoryFood   NounCategory = "FOOD"
	NounCategoryName   NounCategory = "NAME"
)

func (c NounCategory) String() string { return string(c) }

func (c NounCategory) IsValid() bool {
	switch c {
	case NounCategoryPerson, NounCategoryJob, NounCategoryPlace,
		NounCategoryThing, NounCategoryFood, NounCategoryName:
		return true
	}
	return false
}
