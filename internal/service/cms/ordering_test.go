package cms

import (
	"testing"

	models "cms/internal/domain/models/cms"
)

func TestSortSiblings(t *testing.T) {
	tests := []struct {
		name  string
		sorts []int
		want  []int
	}{
		{
			name:  "keys compare as strings",
			sorts: []int{2, 10, 3},
			want:  []int{10, 2, 3},
		},
		{
			name:  "single digit keys look numeric",
			sorts: []int{3, 1, 2},
			want:  []int{1, 2, 3},
		},
		{
			name:  "100 sorts before 20",
			sorts: []int{20, 100, 3},
			want:  []int{100, 20, 3},
		},
		{
			name:  "empty",
			sorts: []int{},
			want:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders := make([]models.Folder, len(tt.sorts))
			for i, s := range tt.sorts {
				folders[i] = models.Folder{ID: int64(i + 1), Sort: s}
			}

			SortSiblings(folders)

			for i, f := range folders {
				if f.Sort != tt.want[i] {
					t.Fatalf("position %d: got sort %d, want %d (full order %v)", i, f.Sort, tt.want[i], sortKeys(folders))
				}
			}
		})
	}
}

func TestSortSiblings_TiesKeepStoreOrder(t *testing.T) {
	folders := []models.Folder{
		{ID: 4, Sort: 1},
		{ID: 7, Sort: 1},
		{ID: 2, Sort: 0},
		{ID: 9, Sort: 1},
	}

	SortSiblings(folders)

	wantIDs := []int64{2, 4, 7, 9}
	for i, f := range folders {
		if f.ID != wantIDs[i] {
			t.Errorf("position %d: got id %d, want %d", i, f.ID, wantIDs[i])
		}
	}
}

func sortKeys(folders []models.Folder) []int {
	keys := make([]int, len(folders))
	for i, f := range folders {
		keys[i] = f.Sort
	}
	return keys
}
