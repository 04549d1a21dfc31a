package dto

// Result is the uniform discriminated result every operation returns:
// `{success:true, ...}` on success, `{success:false, error}` otherwise.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type CreateTaskResult struct {
	Result
	TaskID string `json:"taskId,omitempty"`
}

type AuthResult struct {
	Result
	UserID string `json:"userId,omitempty"`
}

func Failure(msg string) Result {
	return Result{Success: false, Error: msg}
}

func Success(msg string) Result {
	return Result{Success: true, Message: msg}
}
