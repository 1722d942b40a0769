package aisearch

import "github.com/carevo/platform/internal/ai/studentsearch"

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string                         `json:"response"`
	Students []studentsearch.StudentProfile `json:"students"`
}

type ExportRequest struct {
	Students []studentsearch.StudentProfile `json:"students"`
}
