package cms

// FolderNode is one entry of the flattened navigation tree.
// Hierarchy is encoded by order (pre-order) plus the folder's Level; there is no back-pointer.
type FolderNode struct {
	Folder
}
