package sku

import (
	"errors"
	"fmt"
)

// ErrInvalidSKU — базовая (sentinel error) ошибка проверки SKU.
// Все ошибки пакета оборачивают её: errors.Is(err, ErrInvalidSKU).
var ErrInvalidSKU = errors.New("sku validation failed")

// Rule — правило грамматики суффикса, которое нарушено.
type Rule string

const (
	RuleFirstChar    Rule = "first_char"    // первый символ не буква/цифра (или суффикс пуст)
	RuleDoubleHyphen Rule = "double_hyphen" // "--"
	RuleDoubleDot    Rule = "double_dot"    // ".."
	RuleDoubleSpace  Rule = "double_space"  // два пробела подряд
	RuleCharset      Rule = "charset"       // недопустимый символ
	RuleLastChar     Rule = "last_char"     // "-", "." или пробел в конце
)

// TooLongError — SKU длиннее допустимого.
type TooLongError struct {
	Max int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("SKU length should be %d characters maximum.", e.Max)
}

func (e *TooLongError) Unwrap() error { return ErrInvalidSKU }

// BadPrefixError — SKU не начинается с "<код продавца>_" или после префикса ничего нет.
type BadPrefixError struct {
	SKU      string
	Expected string
}

func (e *BadPrefixError) Error() string {
	return fmt.Sprintf("Product SKU must start with %s", e.Expected)
}

func (e *BadPrefixError) Unwrap() error { return ErrInvalidSKU }

// BadSuffixError — суффикс не соответствует грамматике.
// Сообщение одно на все правила; конкретное правило — в Rule.
type BadSuffixError struct {
	Suffix string
	Rule   Rule
}

func (e *BadSuffixError) Error() string {
	return fmt.Sprintf("Product SKU suffix (%s) must contain only (letters, numbers and/or hyphen, "+
		"or this special characters x < > = ( ) / *). "+
		"Hyphen at the beginning, the end or sequential (--) is not valid.", e.Suffix)
}

func (e *BadSuffixError) Unwrap() error { return ErrInvalidSKU }

// Kind — короткое имя вида ошибки для API/метрик: too_long, bad_prefix, bad_suffix.
// Для прочих ошибок — пустая строка.
func Kind(err error) string {
	var (
		tooLong   *TooLongError
		badPrefix *BadPrefixError
		badSuffix *BadSuffixError
	)
	switch {
	case errors.As(err, &tooLong):
		return "too_long"
	case errors.As(err, &badPrefix):
		return "bad_prefix"
	case errors.As(err, &badSuffix):
		return "bad_suffix"
	default:
		return ""
	}
}
