package cms

import (
	"slices"
	"strconv"
	"strings"

	models "cms/internal/domain/models/cms"
)

// SortSiblings orders one parent's children by sort key, compared as decimal
// strings: keys 2, 10 and 3 come out as 10, 2, 3. Existing deployments render
// navigation in this order, so it is kept.
//
// Equal keys keep their incoming order. Stores return children by id, which
// makes the result deterministic.
func SortSiblings(folders []models.Folder) {
	slices.SortStableFunc(folders, compareSortKey)
}

func compareSortKey(a, b models.Folder) int {
	return strings.Compare(strconv.Itoa(a.Sort), strconv.Itoa(b.Sort))
}
