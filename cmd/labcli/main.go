// labcli submits a PDF lab report to a running backend and prints the
// extracted genomic information. Mostly useful for trying out prompt or
// model changes without the web frontend.
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

type processLabRequest struct {
	PDFData string `json:"pdf_data"`
}

type processLabResponse struct {
	Success bool   `json:"success"`
	Data    string `json:"data"`
	Error   string `json:"error"`
}

func main() {
	var serverURL string
	var pdfPath string

	flag.StringVar(&serverURL, "server", "http://localhost:8080", "Backend server URL")
	flag.StringVar(&pdfPath, "file", "", "Path to the PDF lab report")
	flag.Parse()

	if pdfPath == "" {
		log.Fatal("usage: labcli -file report.pdf [-server http://localhost:8080]")
	}

	if err := run(serverURL, pdfPath); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(serverURL, pdfPath string) error {
	pdf, err := os.ReadFile(pdfPath)
	if err != nil {
		return fmt.Errorf("failed to read PDF: %v", err)
	}

	color.Blue("Submitting %s (%d bytes)\n", pdfPath, len(pdf))

	payload, err := json.Marshal(processLabRequest{
		PDFData: base64.StdEncoding.EncodeToString(pdf),
	})
	if err != nil {
		return fmt.Errorf("failed to encode request: %v", err)
	}

	spinner := getSpinner(" Extracting genomic information...")
	defer spinner.Finish()

	// Extraction regularly takes a minute or two on long reports.
	client := &http.Client{Timeout: 5 * time.Minute}

	resp, err := client.Post(serverURL+"/process-lab", "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var result processLabResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}

	spinner.Finish()
	fmt.Print("\r")

	if !result.Success {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, result.Error)
	}

	color.Green("✓ Extraction complete\n\n")
	fmt.Println(result.Data)
	return nil
}
