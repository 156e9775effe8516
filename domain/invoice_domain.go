package domain

var (
	MessageFailedRenderInvoice = "failed to render invoice"
)

type Invoice struct {
	Filename string
	PDF      []byte
}
