package api

import (
	"fmt"
	"net/http"
	"time"

	"roombook/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) handleExportBookings(c echo.Context) error {
	bookings, err := s.bookings.List(c.Request().Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("listing bookings for export failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while exporting bookings.")
	}

	f, err := buildBookingsWorkbook(bookings)
	if err != nil {
		s.logger.Error().Err(err).Msg("building export workbook failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while exporting bookings.")
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error().Err(err).Msg("writing export workbook failed")
		return writeMessage(c, http.StatusInternalServerError, "Server error while exporting bookings.")
	}

	fileName := fmt.Sprintf("bookings_export_%s.xlsx", time.Now().Format("2006-01-02_15-04-05"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

func buildBookingsWorkbook(bookings []models.BookingDetail) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Title", "Room", "Booked By", "Start Time", "End Time"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	_ = f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle)

	for i, booking := range bookings {
		row := i + 2
		_ = f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), booking.ID)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), booking.Title)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), booking.RoomName)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), booking.UserEmail)
		_ = f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), booking.StartTime.Format("02.01.2006 15:04"))
		_ = f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), booking.EndTime.Format("02.01.2006 15:04"))
	}

	_ = f.SetColWidth(sheetName, "A", "A", 8)
	_ = f.SetColWidth(sheetName, "B", "B", 30)
	_ = f.SetColWidth(sheetName, "C", "C", 20)
	_ = f.SetColWidth(sheetName, "D", "D", 25)
	_ = f.SetColWidth(sheetName, "E", "F", 20)

	_ = f.DeleteSheet("Sheet1")

	return f, nil
}
