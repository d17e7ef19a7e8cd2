package cms

import (
	"reflect"
	"testing"

	models "cms/internal/domain/models/cms"
)

func TestBuildFileWhere(t *testing.T) {
	folderID := int64(3)
	adminID := int64(9)
	image := models.FileTypeImage

	testCases := []struct {
		name      string
		filter    models.FileFilter
		wantWhere string
		wantArgs  []interface{}
	}{
		{
			name:      "status only",
			filter:    models.FileFilter{Status: models.FileStatusDisplay},
			wantWhere: "WHERE status = $1",
			wantArgs:  []interface{}{models.FileStatusDisplay},
		},
		{
			name:      "folder and type",
			filter:    models.FileFilter{FolderID: &folderID, Type: &image, Status: models.FileStatusDisplay},
			wantWhere: "WHERE status = $1 AND folder_id = $2 AND type = $3",
			wantArgs:  []interface{}{models.FileStatusDisplay, folderID, image},
		},
		{
			name:      "every field",
			filter:    models.FileFilter{FolderID: &folderID, AdminID: &adminID, Type: &image, Status: models.FileStatusHidden},
			wantWhere: "WHERE status = $1 AND folder_id = $2 AND admin_id = $3 AND type = $4",
			wantArgs:  []interface{}{models.FileStatusHidden, folderID, adminID, image},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			where, args := buildFileWhere(tc.filter)
			if where != tc.wantWhere {
				t.Errorf("where = %q, want %q", where, tc.wantWhere)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("args = %v, want %v", args, tc.wantArgs)
			}
		})
	}
}
