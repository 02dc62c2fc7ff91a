package adapter

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rafaelssenna/sol-client/models"
)

func (a *API) ListItems(ctx context.Context, params models.ItemListParams) (models.PaginatedItems, error) {
	req := setPageParams(a.client.R().SetContext(ctx), params.Page, params.PerPage)
	if params.Status != "" {
		req.SetQueryParam("status", string(params.Status))
	}
	if params.Category != "" {
		req.SetQueryParam("category", params.Category)
	}
	if params.Search != "" {
		req.SetQueryParam("search", params.Search)
	}

	resp, err := req.Get("/api/items")
	if err != nil {
		return models.PaginatedItems{}, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PaginatedItems{}, err
	}

	var out models.PaginatedItems
	if err = decodeJSON(resp, &out); err != nil {
		return models.PaginatedItems{}, err
	}
	return out, nil
}

func (a *API) GetItem(ctx context.Context, id int64) (models.Item, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Get("/api/items/" + itoa64(id))
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var out models.Item
	if err = decodeJSON(resp, &out); err != nil {
		return models.Item{}, err
	}
	return out, nil
}

// CreateItemFromPhoto uploads a product photo for AI identification. The
// attachment is size-checked locally and no request leaves the client when it
// exceeds the configured limit.
func (a *API) CreateItemFromPhoto(ctx context.Context, att FileAttachment, form models.ItemUploadContext) (models.Item, error) {
	return a.uploadItem(ctx, "/api/items/from-photo", att, form)
}

// CreateItemFromFile uploads a spreadsheet or document describing the item.
// Same size rules as CreateItemFromPhoto.
func (a *API) CreateItemFromFile(ctx context.Context, att FileAttachment, form models.ItemUploadContext) (models.Item, error) {
	return a.uploadItem(ctx, "/api/items/from-file", att, form)
}

func (a *API) uploadItem(ctx context.Context, path string, att FileAttachment, form models.ItemUploadContext) (models.Item, error) {
	defer att.Close()

	if err := a.validateAttachment(att); err != nil {
		return models.Item{}, err
	}

	req := a.client.R().
		SetContext(ctx).
		SetFileReader("file", att.Name, att.Reader)
	if form.Quantity > 0 {
		req.SetFormData(map[string]string{"quantity": strconv.Itoa(form.Quantity)})
	}
	if form.Unit != "" {
		req.SetFormData(map[string]string{"unit": form.Unit})
	}
	if form.Priority > 0 {
		req.SetFormData(map[string]string{"priority": strconv.Itoa(form.Priority)})
	}
	if form.Notes != "" {
		req.SetFormData(map[string]string{"notes": form.Notes})
	}
	if form.AdditionalContext != "" {
		req.SetFormData(map[string]string{"additional_context": form.AdditionalContext})
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.Item{}, fmt.Errorf("upload item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var out models.Item
	if err = decodeJSON(resp, &out); err != nil {
		return models.Item{}, err
	}
	return out, nil
}

func (a *API) CreateItemFromDescription(ctx context.Context, req models.CreateItemFromDescription) (models.Item, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/items/from-description")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var out models.Item
	if err = decodeJSON(resp, &out); err != nil {
		return models.Item{}, err
	}
	return out, nil
}

func (a *API) UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/items/" + itoa64(id))
	if err != nil {
		return models.Item{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var out models.Item
	if err = decodeJSON(resp, &out); err != nil {
		return models.Item{}, err
	}
	return out, nil
}

func (a *API) DeleteItem(ctx context.Context, id int64) error {
	resp, err := a.client.R().
		SetContext(ctx).
		Delete("/api/items/" + itoa64(id))
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}
	return mapHTTPError(resp)
}

// StartQuotation moves an identified item into the quoting stage.
func (a *API) StartQuotation(ctx context.Context, id int64) (models.Item, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		Post("/api/items/" + itoa64(id) + "/start-quotation")
	if err != nil {
		return models.Item{}, fmt.Errorf("start quotation request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	var out models.Item
	if err = decodeJSON(resp, &out); err != nil {
		return models.Item{}, err
	}
	return out, nil
}
