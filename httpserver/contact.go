package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"phonebook/contact"
	"phonebook/errs"
)

func (s *Server) RegisterContactRoutes() {
	s.Router.GET("/api/contacts", s.handleListContacts)
	s.Router.POST("/api/contacts", s.handleAddContact)
	s.Router.DELETE("/api/contacts/:name", s.handleDeleteContact)
	s.Router.GET("/api/contacts/:name/phones", s.handleListPhones)
	s.Router.PUT("/api/contacts/:name/phone", s.handleChangePhone)
	s.Router.GET("/api/contacts/:name/birthday", s.handleGetBirthday)
	s.Router.PUT("/api/contacts/:name/birthday", s.handleSetBirthday)
	s.Router.GET("/api/birthdays", s.handleUpcomingBirthdays)
}

func (s *Server) handleListContacts(c echo.Context) error {
	contacts, err := s.BookService.ListContacts(c.Request().Context())
	if err != nil {
		return err
	}

	return writeList(c, http.StatusOK, contacts)
}

func (s *Server) handleAddContact(c echo.Context) error {
	var req AddContactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.BookService.AddContact(c.Request().Context(), req.Name, req.Phone); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusCreated, nil)
}

func (s *Server) handleDeleteContact(c echo.Context) error {
	deleted, err := s.BookService.DeleteContact(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]bool{"deleted": deleted})
}

func (s *Server) handleListPhones(c echo.Context) error {
	name := c.Param("name")
	phones, err := s.BookService.PhonesOf(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, map[string]interface{}{
		"name":   name,
		"phones": phones,
	})
}

func (s *Server) handleChangePhone(c echo.Context) error {
	var req ChangePhoneRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := s.BookService.ChangePhone(c.Request().Context(), c.Param("name"), req.OldPhone, req.NewPhone)
	if err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, nil)
}

func (s *Server) handleSetBirthday(c echo.Context) error {
	var req SetBirthdayRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := s.BookService.SetBirthday(c.Request().Context(), c.Param("name"), req.Birthday); err != nil {
		return err
	}

	return writeSuccess(c, http.StatusOK, nil)
}

func (s *Server) handleGetBirthday(c echo.Context) error {
	name := c.Param("name")
	birthday, err := s.BookService.BirthdayOf(c.Request().Context(), name)
	if err != nil {
		return err
	}
	if birthday == "" {
		return errs.Errorf(errs.ENOTFOUND, "no birthday found for %s", name)
	}

	return writeSuccess(c, http.StatusOK, map[string]string{
		"name":     name,
		"birthday": birthday,
	})
}

type upcomingBirthdayResponse struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func (s *Server) handleUpcomingBirthdays(c echo.Context) error {
	upcoming, err := s.BookService.UpcomingBirthdays(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]upcomingBirthdayResponse, len(upcoming))
	for i, u := range upcoming {
		out[i] = upcomingBirthdayResponse{
			Name: u.Name,
			Date: u.Date.Format(contact.BirthdayLayout),
		}
	}

	return writeList(c, http.StatusOK, out)
}
