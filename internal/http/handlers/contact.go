package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"skyline/internal/domain"
	"skyline/internal/middleware"
)

type inquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

var inquiryTypes = map[domain.InquiryType]bool{
	domain.InquiryGeneral:   true,
	domain.InquiryQuote:     true,
	domain.InquiryPartner:   true,
	domain.InquiryComplaint: true,
}

// CreateInquiry records a contact form submission together with the request's
// IP, user agent and resolved country.
func (a *App) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var req inquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Email == "" || req.Message == "" {
		a.error(w, http.StatusBadRequest, "invalid_input", "name, email and message are required")
		return
	}

	inqType := domain.InquiryType(req.Type)
	if !inquiryTypes[inqType] {
		inqType = domain.InquiryGeneral
	}

	in := &domain.ContactInquiry{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   req.Message,
		Type:      inqType,
		Status:    domain.InquiryNew,
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		Country:   middleware.CountryFromContext(r.Context()),
	}
	if err := a.Inquiries.Create(r.Context(), in); err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to submit inquiry")
		return
	}
	a.json(w, http.StatusCreated, map[string]any{"id": in.ID, "status": in.Status})
}

func (a *App) ListInquiries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	inquiries, err := a.Inquiries.List(r.Context(), domain.InquiryStatus(q.Get("status")), limit, offset)
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load inquiries")
		return
	}
	items := make([]map[string]any, 0, len(inquiries))
	for _, in := range inquiries {
		items = append(items, map[string]any{
			"id":         in.ID,
			"name":       in.Name,
			"email":      in.Email,
			"phone":      in.Phone,
			"subject":    in.Subject,
			"message":    in.Message,
			"type":       in.Type,
			"status":     in.Status,
			"ip_address": in.IPAddress,
			"country":    in.Country,
			"created_at": in.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

type inquiryStatusRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

var inquiryStatuses = map[domain.InquiryStatus]bool{
	domain.InquiryNew:      true,
	domain.InquiryReplied:  true,
	domain.InquiryArchived: true,
}

func (a *App) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req inquiryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid_input", "invalid JSON body")
		return
	}
	status := domain.InquiryStatus(req.Status)
	if req.ID == 0 || !inquiryStatuses[status] {
		a.error(w, http.StatusBadRequest, "invalid_input", "id and a valid status are required")
		return
	}
	if err := a.Inquiries.UpdateStatus(r.Context(), req.ID, status); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "inquiry not found")
			return
		}
		a.error(w, http.StatusInternalServerError, "internal", "failed to update inquiry")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"id": req.ID, "status": status})
}
