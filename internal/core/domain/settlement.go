package domain

// Settlement — один из двух поселков. Почти все данные и маршруты
// партиционированы по этому признаку.
type Settlement string

const (
	SettlementZapovednoe Settlement = "zapovednoe"
	SettlementKolosok    Settlement = "kolosok"
)

// AllSettlements — порядок важен для детерминированных ответов.
var AllSettlements = []Settlement{SettlementZapovednoe, SettlementKolosok}

// ParseSettlement разбирает значение из URL или тела запроса.
func ParseSettlement(s string) (Settlement, error) {
	switch Settlement(s) {
	case SettlementZapovednoe:
		return SettlementZapovednoe, nil
	case SettlementKolosok:
		return SettlementKolosok, nil
	}
	return "", NewValidationError("settlement", "unknown settlement: "+s)
}

func (s Settlement) Valid() bool {
	return s == SettlementZapovednoe || s == SettlementKolosok
}
