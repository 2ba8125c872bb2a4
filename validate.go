package iso20022

// Validator is implemented by every leaf type, record, choice group and
// message. Validate reports the first violation or nil.
type Validator interface {
	Validate() error
}

// Check is one deferred field check of a record.
type Check func() error

// Fields runs checks in declaration order and stops at the first failure.
func Fields(checks ...Check) error {
	for _, c := range checks {
		if err := c(); err != nil {
			return err
		}
	}
	return nil
}

// Required validates a field that is always present.
func Required(field string, v Validator) Check {
	return func() error {
		return At(field, v.Validate())
	}
}

// Optional validates a field only when it is present. Absence is never an
// error.
func Optional[V Validator](field string, v *V) Check {
	return func() error {
		if v == nil {
			return nil
		}
		return At(field, (*v).Validate())
	}
}

// Repeated validates each element of a repeated field in order.
func Repeated[V Validator](field string, items []V) Check {
	return func() error {
		for i := range items {
			if err := items[i].Validate(); err != nil {
				return AtIndex(field, i, err)
			}
		}
		return nil
	}
}
