package sku

// checkSuffix — однопроходная проверка суффикса (вся строка целиком):
//  1. первый символ — [A-Za-z0-9];
//  2-4. нет "--", "..", двух пробелов подряд;
//  5. все символы — буквы, цифры, "-", ".", пробел или ( ) < > / *;
//  6. последний символ — не "-", не пробел и не ".".
//
// Возвращает нарушенное правило; "" — суффикс корректен.
func checkSuffix(suffix string) Rule {
	if suffix == "" || !isAlnum(suffix[0]) {
		return RuleFirstChar
	}

	var prev byte
	for i := 0; i < len(suffix); i++ {
		ch := suffix[i]
		if !allowed(ch) {
			return RuleCharset
		}
		if i > 0 && ch == prev {
			switch ch {
			case '-':
				return RuleDoubleHyphen
			case '.':
				return RuleDoubleDot
			case ' ':
				return RuleDoubleSpace
			}
		}
		prev = ch
	}

	switch suffix[len(suffix)-1] {
	case '-', ' ', '.':
		return RuleLastChar
	}
	return ""
}

func isAlnum(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9'
}

func allowed(ch byte) bool {
	if isAlnum(ch) {
		return true
	}
	switch ch {
	case '-', '.', ' ', '(', ')', '<', '>', '/', '*':
		return true
	}
	return false
}
