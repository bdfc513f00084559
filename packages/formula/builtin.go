package formula

// builtinFunc aggregates a flattened list of operand Values (cell refs and
// range members alike) into a single result. An error anywhere in the
// operand list propagates unchanged, mirroring the error-propagation
// policy used for ordinary arithmetic.
type builtinFunc func(args []Value) Value

// builtins is a dispatch-by-name table narrowed to the handful of
// range-aggregating functions the grammar needs.
var builtins = map[string]builtinFunc{
	"SUM":     sumFn,
	"AVERAGE": averageFn,
	"MIN":     minFn,
	"MAX":     maxFn,
	"COUNT":   countFn,
}

func isBuiltinName(name string) bool {
	_, ok := builtins[name]
	return ok
}

// firstError returns the first error-kind value in args, if any.
func firstError(args []Value) (Value, bool) {
	for _, v := range args {
		if v.Kind == KindError {
			return v, true
		}
	}
	return Value{}, false
}

func sumFn(args []Value) Value {
	if errVal, ok := firstError(args); ok {
		return errVal
	}
	var total float64
	for _, v := range args {
		total += v.Number
	}
	return finiteOrArithmetic(total)
}

func averageFn(args []Value) Value {
	if errVal, ok := firstError(args); ok {
		return errVal
	}
	if len(args) == 0 {
		return errorValue(ErrArithmetic)
	}
	var total float64
	for _, v := range args {
		total += v.Number
	}
	return finiteOrArithmetic(total / float64(len(args)))
}

func minFn(args []Value) Value {
	if errVal, ok := firstError(args); ok {
		return errVal
	}
	if len(args) == 0 {
		return numberValue(0)
	}
	min := args[0].Number
	for _, v := range args[1:] {
		if v.Number < min {
			min = v.Number
		}
	}
	return numberValue(min)
}

func maxFn(args []Value) Value {
	if errVal, ok := firstError(args); ok {
		return errVal
	}
	if len(args) == 0 {
		return numberValue(0)
	}
	max := args[0].Number
	for _, v := range args[1:] {
		if v.Number > max {
			max = v.Number
		}
	}
	return numberValue(max)
}

func countFn(args []Value) Value {
	if errVal, ok := firstError(args); ok {
		return errVal
	}
	return numberValue(float64(len(args)))
}
