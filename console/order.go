package console

import (
	"strings"

	"github.com/aarrwnh/arraylist/arraylist"
	"github.com/pkg/errors"
)

type OrderKind int

const (
	OrderAsc OrderKind = iota
	OrderDesc
	OrderLength
	OrderFold
)

var orderNames = map[string]OrderKind{
	"":     OrderAsc,
	"asc":  OrderAsc,
	"desc": OrderDesc,
	"len":  OrderLength,
	"fold": OrderFold,
}

func parseOrder(token string) (OrderKind, error) {
	kind, ok := orderNames[strings.ToLower(token)]
	if !ok {
		return OrderAsc, errors.Errorf("unknown sort order %q (asc, desc, len, fold)", token)
	}
	return kind, nil
}

func (o OrderKind) String() string {
	switch o {
	case OrderDesc:
		return "desc"
	case OrderLength:
		return "len"
	case OrderFold:
		return "fold"
	}
	return "asc"
}

// comparator returns the three-way comparison used by the list sort.
func (o OrderKind) comparator() func(a, b string) int {
	switch o {
	case OrderDesc:
		return arraylist.Descending[string]
	case OrderLength:
		return func(a, b string) int {
			if len(a) != len(b) {
				return len(a) - len(b)
			}
			return arraylist.Ascending(a, b)
		}
	case OrderFold:
		return func(a, b string) int {
			return arraylist.Ascending(strings.ToLower(a), strings.ToLower(b))
		}
	}
	return arraylist.Ascending[string]
}
