package parameter

// TypeValue pairs a ValueHolder with the View matching its kind.
//
// Values are built only by NewValue, which guarantees the pairing.
type TypeValue interface {
	// Kind returns the kind of the held value.
	Kind() Kind

	// Holder returns the value storage.
	Holder() ValueHolder

	// Render delegates to the value's view.
	Render(display Display) error
}

// Compile-time interface checks.
var (
	_ TypeValue = (*DigitalValue)(nil)
	_ TypeValue = (*SelectValue)(nil)
)

// typeValue is the shared holder/view pair behind both variants.
type typeValue struct {
	holder ValueHolder
	view   View
}

func (v *typeValue) Kind() Kind                   { return v.holder.Kind() }
func (v *typeValue) Holder() ValueHolder          { return v.holder }
func (v *typeValue) Render(display Display) error { return v.view.Render(display) }

// DigitalValue is the TypeValue variant for Integer and Float values.
type DigitalValue struct {
	typeValue
}

// SelectValue is the TypeValue variant for Select values.
type SelectValue struct {
	typeValue
}

// factoryEntry describes how to build the TypeValue for one kind.
type factoryEntry struct {
	wrap    func(holder ValueHolder, view View) TypeValue
	newHold func(raw any) ValueHolder
	newView func(raw any) View
}

func wrapDigital(holder ValueHolder, view View) TypeValue {
	return &DigitalValue{typeValue{holder: holder, view: view}}
}

func wrapSelect(holder ValueHolder, view View) TypeValue {
	return &SelectValue{typeValue{holder: holder, view: view}}
}

// factoryTable is the single place pairing holders with views.
var factoryTable = map[Kind]factoryEntry{
	KindInteger: {
		wrap:    wrapDigital,
		newHold: func(raw any) ValueHolder { return NewIntegerHolder(raw) },
		newView: func(raw any) View { return NewIntegerView(raw) },
	},
	KindFloat: {
		wrap:    wrapDigital,
		newHold: func(raw any) ValueHolder { return NewFloatHolder(raw) },
		newView: func(raw any) View { return NewFloatView(raw) },
	},
	KindSelect: {
		wrap:    wrapSelect,
		newHold: func(raw any) ValueHolder { return NewSelectHolder(raw) },
		newView: func(raw any) View { return NewSelectView(raw) },
	},
}

// NewValue classifies raw and builds the matching TypeValue.
//
// The holder and the view are constructed independently from raw, so
// neither shares mutable state with the other or with the caller.
//
// Parameters:
//   - raw: Integer, float, Options or []string value
//
// Returns:
//   - TypeValue: *DigitalValue for Integer/Float, *SelectValue for Select
//   - error: ErrUnsupportedValueKind from Classify, unchanged
func NewValue(raw any) (TypeValue, error) {
	kind, err := Classify(raw)
	if err != nil {
		return nil, err
	}

	entry := factoryTable[kind]
	return entry.wrap(entry.newHold(raw), entry.newView(raw)), nil
}
