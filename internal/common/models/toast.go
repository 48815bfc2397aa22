package models

type ToastVariant string

const (
	ToastSuccess ToastVariant = "success"
	ToastError   ToastVariant = "error"
)

// Toast is a transient notification returned after a mutation.
type Toast struct {
	Title   string       `json:"title"`
	Message string       `json:"message"`
	Variant ToastVariant `json:"variant"`
}

func SuccessToast(title, message string) Toast {
	return Toast{Title: title, Message: message, Variant: ToastSuccess}
}

func ErrorToast(title, message string) Toast {
	return Toast{Title: title, Message: message, Variant: ToastError}
}
