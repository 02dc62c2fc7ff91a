package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/rafaelssenna/sol-client/models"
)

// AnalyzeDrawing sends a technical drawing for AI interpretation.
func (a *API) AnalyzeDrawing(ctx context.Context, att FileAttachment, drawingType, additionalContext string) (models.DrawingAnalysis, error) {
	defer att.Close()

	var out models.DrawingAnalysis
	if err := a.validateAttachment(att); err != nil {
		return out, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetFileReader("file", att.Name, att.Reader)
	if drawingType != "" {
		req.SetFormData(map[string]string{"drawing_type": drawingType})
	}
	if additionalContext != "" {
		req.SetFormData(map[string]string{"additional_context": additionalContext})
	}

	err := a.postDrawing(req, "/api/technical-drawings/analyze", &out)
	return out, err
}

func (a *API) ExtractBOM(ctx context.Context, att FileAttachment) (models.BillOfMaterials, error) {
	defer att.Close()

	var out models.BillOfMaterials
	if err := a.validateAttachment(att); err != nil {
		return out, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetFileReader("file", att.Name, att.Reader)

	err := a.postDrawing(req, "/api/technical-drawings/extract-bom", &out)
	return out, err
}

// CompareDrawingVersions diffs two revisions of the same drawing. Both files
// are size-checked before anything is sent.
func (a *API) CompareDrawingVersions(ctx context.Context, oldDrawing, newDrawing FileAttachment) (models.DrawingComparison, error) {
	defer oldDrawing.Close()
	defer newDrawing.Close()

	var out models.DrawingComparison
	if err := a.validateAttachment(oldDrawing); err != nil {
		return out, err
	}
	if err := a.validateAttachment(newDrawing); err != nil {
		return out, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetFileReader("old_drawing", oldDrawing.Name, oldDrawing.Reader).
		SetFileReader("new_drawing", newDrawing.Name, newDrawing.Reader)

	err := a.postDrawing(req, "/api/technical-drawings/compare-versions", &out)
	return out, err
}

func (a *API) GeneratePurchaseList(ctx context.Context, att FileAttachment, quantityMultiplier int) (models.PurchaseList, error) {
	defer att.Close()

	var out models.PurchaseList
	if err := a.validateAttachment(att); err != nil {
		return out, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetFileReader("file", att.Name, att.Reader)
	if quantityMultiplier > 0 {
		req.SetFormData(map[string]string{"quantity_multiplier": strconv.Itoa(quantityMultiplier)})
	}

	err := a.postDrawing(req, "/api/technical-drawings/generate-purchase-list", &out)
	return out, err
}

// IdentifyFromDrawing creates a procurement item from a drawing instead of a
// product photo.
func (a *API) IdentifyFromDrawing(ctx context.Context, att FileAttachment, additionalContext string) (models.Item, error) {
	defer att.Close()

	var out models.Item
	if err := a.validateAttachment(att); err != nil {
		return out, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetFileReader("file", att.Name, att.Reader)
	if additionalContext != "" {
		req.SetFormData(map[string]string{"additional_context": additionalContext})
	}

	err := a.postDrawing(req, "/api/technical-drawings/identify-from-drawing", &out)
	return out, err
}

func (a *API) postDrawing(req *resty.Request, path string, out any) error {
	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("drawing upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	return decodeJSON(resp, out)
}
