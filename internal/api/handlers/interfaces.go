// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface defines the methods needed by the auth routes.
type AuthHandlerInterface interface {
	GoogleLogin(c *gin.Context)
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	GetUsers(c *gin.Context)
	GetUserByID(c *gin.Context)
	UpdateUser(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	GetJobStats(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
	DeleteAllJobs(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	CreateApplication(c *gin.Context)
	ListApplicationsByUser(c *gin.Context)
	UpdateApplication(c *gin.Context)
	UpdateApplicationStatus(c *gin.Context)
}

// InternshipHandlerInterface defines the methods needed by the internship routes.
type InternshipHandlerInterface interface {
	CreateInternship(c *gin.Context)
	ListInternships(c *gin.Context)
	GetInternshipByID(c *gin.Context)
	UpdateInternship(c *gin.Context)
}

// SettingsHandlerInterface defines the methods needed by the settings routes.
type SettingsHandlerInterface interface {
	GetSettings(c *gin.Context)
	UpsertSettings(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ AuthHandlerInterface = (*AuthHandler)(nil)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ InternshipHandlerInterface = (*InternshipHandler)(nil)
var _ SettingsHandlerInterface = (*SettingsHandler)(nil)
