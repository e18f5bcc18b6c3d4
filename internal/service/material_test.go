package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRow(productID string) MaterialRow {
	return MaterialRow{
		ProductID:          productID,
		ProductDescription: "Widget",
		Cat:                "CAT-A",
		SubCat:             "SUB-1",
		OldProductID:       "OLD-" + productID,
		ProductType:        "FERT",
		IsPlannable:        "Yes",
		ABCCat:             "A",
		NLV:                "12.50",
		LeadTime:           "14",
		MinLotSize:         "10",
		MaxLotSize:         "500",
	}
}

func TestMaterialService_ImportMaterials(t *testing.T) {
	t.Run("saves a valid batch and records activity", func(t *testing.T) {
		repo := &fakeMaterialRepo{}
		activityRepo := &fakeActivityRepo{}
		svc := NewMaterialService(repo, activityRepo)

		count, err := svc.ImportMaterials(context.Background(),
			[]MaterialRow{validRow("P-001"), validRow("P-002")}, "materials.xlsx")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.Len(t, repo.batches, 1)
		require.Len(t, repo.batches[0], 2)
		assert.Equal(t, "P-001", repo.batches[0][0].ProductID)
		assert.Equal(t, 14, repo.batches[0][0].LeadTime)
		assert.Equal(t, "12.5", repo.batches[0][0].NLV.String())

		require.Len(t, activityRepo.recorded, 1)
		assert.Equal(t, "Data Uploaded", activityRepo.recorded[0].Action)
	})

	t.Run("duplicate product IDs keep the later row", func(t *testing.T) {
		repo := &fakeMaterialRepo{}
		svc := NewMaterialService(repo, &fakeActivityRepo{})

		first := validRow("P-001")
		first.ProductDescription = "old description"
		second := validRow("P-001")
		second.ProductDescription = "new description"

		count, err := svc.ImportMaterials(context.Background(),
			[]MaterialRow{first, validRow("P-002"), second}, "dupes.csv")
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		require.Len(t, repo.batches, 1)
		batch := repo.batches[0]
		require.Len(t, batch, 2)
		assert.Equal(t, "P-001", batch[0].ProductID)
		assert.Equal(t, "new description", batch[0].ProductDescription)
		assert.Equal(t, "P-002", batch[1].ProductID)
	})

	t.Run("one invalid row rejects the whole batch", func(t *testing.T) {
		repo := &fakeMaterialRepo{}
		svc := NewMaterialService(repo, &fakeActivityRepo{})

		bad := validRow("P-003")
		bad.NLV = "not-a-number"

		_, err := svc.ImportMaterials(context.Background(),
			[]MaterialRow{validRow("P-001"), bad, validRow("P-002")}, "mixed.xlsx")

		var invalid *ImportValidationError
		require.ErrorAs(t, err, &invalid)
		require.Len(t, invalid.Rows, 1)
		assert.Contains(t, invalid.Rows, 2)
		assert.Contains(t, invalid.Rows[2].Error(), "must be a number")
		assert.Empty(t, repo.batches, "nothing may be saved on a rejected import")
	})

	t.Run("missing required field is reported per row", func(t *testing.T) {
		svc := NewMaterialService(&fakeMaterialRepo{}, &fakeActivityRepo{})

		bad := validRow("P-001")
		bad.Cat = ""

		_, err := svc.ImportMaterials(context.Background(), []MaterialRow{bad}, "upload.csv")

		var invalid *ImportValidationError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Rows, 1)
	})

	t.Run("empty upload is rejected", func(t *testing.T) {
		svc := NewMaterialService(&fakeMaterialRepo{}, &fakeActivityRepo{})

		_, err := svc.ImportMaterials(context.Background(), nil, "empty.xlsx")
		require.ErrorIs(t, err, ErrEmptyImport)
	})
}

func TestParseMaterialFile_CSV(t *testing.T) {
	header := strings.Join(materialColumns, ",")

	t.Run("maps cells by header name", func(t *testing.T) {
		csv := header + "\n" +
			"P-001,Widget,CAT-A,SUB-1,OLD-1,FERT,Yes,A,12.50,14,10,500\n"

		rows, err := ParseMaterialFile("materials.csv", strings.NewReader(csv))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "P-001", rows[0].ProductID)
		assert.Equal(t, "12.50", rows[0].NLV)
		assert.Equal(t, "500", rows[0].MaxLotSize)
	})

	t.Run("skips fully empty rows", func(t *testing.T) {
		csv := header + "\n" +
			",,,,,,,,,,,\n" +
			"P-001,Widget,CAT-A,SUB-1,OLD-1,FERT,Yes,A,12.50,14,10,500\n"

		rows, err := ParseMaterialFile("materials.csv", strings.NewReader(csv))
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("missing columns are named", func(t *testing.T) {
		csv := "Product_ID,Cat\nP-001,CAT-A\n"

		_, err := ParseMaterialFile("materials.csv", strings.NewReader(csv))
		require.ErrorIs(t, err, ErrMissingColumns)
		assert.Contains(t, err.Error(), "Product_Description")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ParseMaterialFile("materials.pdf", strings.NewReader("x"))
		require.ErrorIs(t, err, ErrUnsupportedFile)
	})
}

func TestMaterialService_SaveMaterial(t *testing.T) {
	repo := &fakeMaterialRepo{}
	activityRepo := &fakeActivityRepo{}
	svc := NewMaterialService(repo, activityRepo)

	row := validRow("P-010")
	saved, err := svc.SaveMaterial(context.Background(), row.ToDomain())
	require.NoError(t, err)
	assert.Equal(t, "P-010", saved.ProductID)

	require.Len(t, activityRepo.recorded, 1)
	assert.Equal(t, "Material Saved", activityRepo.recorded[0].Action)
}

func TestMaterialService_DeleteMaterial(t *testing.T) {
	t.Run("deletes and records activity", func(t *testing.T) {
		repo := &fakeMaterialRepo{}
		activityRepo := &fakeActivityRepo{}
		svc := NewMaterialService(repo, activityRepo)

		require.NoError(t, svc.DeleteMaterial(context.Background(), "P-001"))
		assert.Equal(t, []string{"P-001"}, repo.deleted)
		require.Len(t, activityRepo.recorded, 1)
		assert.Equal(t, "Material Deleted", activityRepo.recorded[0].Action)
	})

	t.Run("not found surfaces unchanged", func(t *testing.T) {
		svc := NewMaterialService(&fakeMaterialRepo{err: ErrMaterialNotFound}, &fakeActivityRepo{})

		err := svc.DeleteMaterial(context.Background(), "missing")
		require.ErrorIs(t, err, ErrMaterialNotFound)
	})
}

func TestMaterialRow_Validate(t *testing.T) {
	t.Run("blank numeric fields are rejected", func(t *testing.T) {
		for _, field := range []string{"NLV", "Lead_Time", "Min_Lot_Size", "Max_Lot_Size"} {
			row := validRow("P-001")
			switch field {
			case "NLV":
				row.NLV = ""
			case "Lead_Time":
				row.LeadTime = "   "
			case "Min_Lot_Size":
				row.MinLotSize = ""
			case "Max_Lot_Size":
				row.MaxLotSize = ""
			}

			err := row.Validate()
			require.Error(t, err, field)
			assert.Contains(t, err.Error(), field)
			assert.Contains(t, err.Error(), "must be a number")
		}
	})

	t.Run("a blank numeric cell rejects the whole batch", func(t *testing.T) {
		repo := &fakeMaterialRepo{}
		svc := NewMaterialService(repo, &fakeActivityRepo{})

		bad := validRow("P-002")
		bad.MinLotSize = ""

		_, err := svc.ImportMaterials(context.Background(),
			[]MaterialRow{validRow("P-001"), bad}, "blanks.xlsx")

		var invalid *ImportValidationError
		require.ErrorAs(t, err, &invalid)
		assert.Contains(t, invalid.Rows, 2)
		assert.Empty(t, repo.batches)
	})

	t.Run("all required fields reported at once", func(t *testing.T) {
		err := (&MaterialRow{}).Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Product_ID")
		assert.Contains(t, err.Error(), "cannot be blank")
	})
}

func TestImportValidationError_Error(t *testing.T) {
	err := &ImportValidationError{Rows: map[int]error{1: errors.New("x"), 5: errors.New("y")}}
	assert.Equal(t, "2 invalid rows", err.Error())
}
