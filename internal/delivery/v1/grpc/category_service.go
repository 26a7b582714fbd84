package grpc

import (
	"context"
	"time"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/internal/usecase"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// CategoryService — read-only доступ к категориям для других сервисов.
type CategoryService struct {
	categoryUC usecase.CategoryUC
	logger     logger.Logger
}

var _ CategoryServiceServer = (*CategoryService)(nil)

func NewCategoryService(categoryUC usecase.CategoryUC, logger logger.Logger) *CategoryService {
	return &CategoryService{categoryUC: categoryUC, logger: logger}
}

func (g *CategoryService) GetCategory(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	const op = "grpc.GetCategory"

	category, err := g.categoryUC.GetCategory(ctx, req.GetValue())
	if err != nil {
		g.logError(op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	res, err := structpb.NewStruct(categoryFields(category))
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}

	return res, nil
}

func (g *CategoryService) ListCategories(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	const op = "grpc.ListCategories"

	page, err := g.categoryUC.ListCategories(ctx, toSearchQuery(req))
	if err != nil {
		g.logError(op, err)
		return nil, GRPCErrorResponse(e.Wrap(op, err))
	}

	items := make([]any, 0, len(page.Items))
	for _, c := range page.Items {
		items = append(items, map[string]any{
			"id":          c.ID.String(),
			"name":        c.Name,
			"description": optionalString(c.Description),
			"is_active":   c.IsActive,
			"created_at":  formatTime(c.CreatedAt),
			"deleted_at":  optionalTime(c.DeletedAt),
		})
	}

	res, err := structpb.NewStruct(map[string]any{
		"current_page": page.CurrentPage,
		"per_page":     page.PerPage,
		"total":        page.Total,
		"items":        items,
	})
	if err != nil {
		g.logger.Errorf(e.Wrap(op, err), "%s", op)
		return nil, status.Error(codes.Internal, e.ErrInternalServerError.Error())
	}

	return res, nil
}

func (g *CategoryService) logError(op string, err error) {
	if domain.IsKind(err, domain.KindNotFound) || domain.IsKind(err, domain.KindValidation) {
		g.logger.Debugf("%s: %v", op, err)
		return
	}

	g.logger.Errorf(e.Wrap(op, err), "%s", op)
}

func categoryFields(c *usecase.CategoryOutput) map[string]any {
	return map[string]any{
		"id":          c.ID.String(),
		"name":        c.Name,
		"description": optionalString(c.Description),
		"is_active":   c.IsActive,
		"created_at":  formatTime(c.CreatedAt),
		"updated_at":  formatTime(c.UpdatedAt),
		"deleted_at":  optionalTime(c.DeletedAt),
	}
}

// toSearchQuery читает параметры листинга; отсутствующие поля нормализует сценарий.
func toSearchQuery(req *structpb.Struct) domain.CategorySearchQuery {
	fields := req.GetFields()

	return domain.NewCategorySearchQuery(
		int(fields["page"].GetNumberValue()),
		int(fields["per_page"].GetNumberValue()),
		fields["search"].GetStringValue(),
		fields["sort"].GetStringValue(),
		fields["dir"].GetStringValue(),
	)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func optionalString(s *string) any {
	if s == nil {
		return nil
	}

	return *s
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return formatTime(*t)
}
