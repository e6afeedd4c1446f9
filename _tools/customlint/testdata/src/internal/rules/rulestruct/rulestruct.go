package rulestruct

// NotInRule is documented and has a constructor.
type NotInRule struct{}

// NewNotInRule creates a new rule instance.
func NewNotInRule() *NotInRule { return &NotInRule{} }

type UndocumentedRule struct{} // want `exported rule struct UndocumentedRule should have a documentation comment`

// NewUndocumentedRule creates a new rule instance.
func NewUndocumentedRule() *UndocumentedRule { return &UndocumentedRule{} }

// OrphanRule has no constructor.
type OrphanRule struct{} // want `exported rule struct OrphanRule should have a NewOrphanRule constructor`

type (
	// GroupedRule is documented inside a group.
	GroupedRule struct{}

	// helperRule is unexported and ignored.
	helperRule struct{}
)

// NewGroupedRule creates a new rule instance.
func NewGroupedRule() *GroupedRule { return &GroupedRule{} }

// Options is not a rule.
type Options struct{}
