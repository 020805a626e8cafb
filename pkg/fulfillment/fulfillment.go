// Пакет fulfillment — распознавание SKU, прошедших через fulfillment-склады.
//
// Формат: <code>(_F<digits>[_<code>])+_<suffix>, где <code> — часть SKU до первого "_".
// Примеры: AA_F12_sku, AA_F1_F2_sku, LP_F01_LP_5444664.
package fulfillment

import (
	"strings"

	"github.com/Gunvolt24/wb_catalog/internal/ports"
)

// Проверка, что Detector удовлетворяет интерфейсу FulfillmentDetector.
var _ ports.FulfillmentDetector = Detector{}

// Detector — stateless реализация ports.FulfillmentDetector.
type Detector struct{}

// IsFulfillmentSKU — true, если после кода продавца идёт хотя бы один маркер _F<digits>,
// за которым следует "_".
func (Detector) IsFulfillmentSKU(sku string) bool { return Stages(sku) > 0 }

// Stages — см. пакетную функцию Stages.
func (Detector) Stages(sku string) int { return Stages(sku) }

// IsFulfillmentSKU — пакетный вариант Detector.IsFulfillmentSKU.
func IsFulfillmentSKU(sku string) bool { return Stages(sku) > 0 }

// Stages — число маркеров _F<digits> в fulfillment SKU; 0, если SKU не fulfillment.
//
// Маркеры разбираются жадно, но засчитывается только та последовательность,
// после которой стоит "_": AA_F1_F2x — это один маркер и суффикс F2x.
func Stages(sku string) int {
	lead, _, ok := strings.Cut(sku, "_")
	if !ok || lead == "" {
		return 0
	}
	repeat := "_" + lead + "_"

	pos := len(lead)
	stages, best := 0, 0
	for {
		next, ok := marker(sku, pos)
		if !ok {
			break
		}
		// необязательный повтор кода продавца: _F01_LP_...
		if strings.HasPrefix(sku[next:], repeat) {
			next += len(repeat) - 1
		}
		pos = next
		stages++
		if pos < len(sku) && sku[pos] == '_' {
			best = stages
		}
	}
	return best
}

// marker — разбирает "_F<digits>" начиная с pos; возвращает позицию после цифр.
func marker(sku string, pos int) (int, bool) {
	if !strings.HasPrefix(sku[pos:], "_F") {
		return pos, false
	}
	i := pos + 2
	start := i
	for i < len(sku) && sku[i] >= '0' && sku[i] <= '9' {
		i++
	}
	if i == start {
		return pos, false
	}
	return i, true
}
