package handler

import "github.com/lepdv/todolist-rest/internal/core/domain"

// taskResponse is the task view returned by task and admin endpoints.
// isCompleted keeps its historical string form ("Completed" /
// "Not completed") for wire compatibility.
type taskResponse struct {
	ID             int64  `json:"id"`
	Description    string `json:"description"`
	DateOfCreation *Date  `json:"dateOfCreation"`
	DueDate        *Date  `json:"dueDate,omitempty"`
	IsCompleted    string `json:"isCompleted"`
	User           string `json:"user"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:             t.ID,
		Description:    t.Description,
		DateOfCreation: datePtr(t.CreatedOn),
		DueDate:        datePtr(t.DueDate),
		IsCompleted:    t.CompletedLabel(),
		User:           t.Owner,
	}
}

// taskListResponse wraps a page of tasks.
type taskListResponse struct {
	TaskList []taskResponse `json:"taskList"`
}

func toTaskListResponse(tasks []*domain.Task) taskListResponse {
	out := taskListResponse{TaskList: make([]taskResponse, 0, len(tasks))}
	for _, t := range tasks {
		out.TaskList = append(out.TaskList, toTaskResponse(t))
	}
	return out
}

// userResponse is the self-service profile view.
type userResponse struct {
	Username    string `json:"username"`
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth *Date  `json:"dateOfBirth,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Username:    u.Username,
		FullName:    u.FullName,
		DateOfBirth: datePtr(u.DateOfBirth),
	}
}

// userForAdminResponse is the administrator's user view, including role
// and lock state (isNonLocked keeps the historical inverted name).
type userForAdminResponse struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName,omitempty"`
	DateOfBirth *Date  `json:"dateOfBirth,omitempty"`
	Role        string `json:"role"`
	IsNonLocked bool   `json:"isNonLocked"`
}

func toUserForAdminResponse(u *domain.User) userForAdminResponse {
	return userForAdminResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		DateOfBirth: datePtr(u.DateOfBirth),
		Role:        u.Role,
		IsNonLocked: !u.Locked,
	}
}

// userListResponse wraps a page of users for the admin list endpoint.
type userListResponse struct {
	UserList []userForAdminResponse `json:"userList"`
}

func toUserListResponse(users []*domain.User) userListResponse {
	out := userListResponse{UserList: make([]userForAdminResponse, 0, len(users))}
	for _, u := range users {
		out.UserList = append(out.UserList, toUserForAdminResponse(u))
	}
	return out
}

// credentialsRequest is the username/password pair re-verified before
// sensitive operations.
type credentialsRequest struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=100"`
	Password string `json:"password" validate:"required,notblank,min=3,max=100"`
}

// jwtResponse carries a freshly issued token.
type jwtResponse struct {
	Jwt string `json:"jwt"`
}
