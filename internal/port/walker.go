package port

type DatasetWalker interface {
	Walk(root string) ([]string, error)
}
