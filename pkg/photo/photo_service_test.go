package photo

import (
	"Recipe-Book/domain"
	"Recipe-Book/entities"
	"Recipe-Book/internal/testsupport"
	"Recipe-Book/internal/utils/storage"
	"Recipe-Book/pkg/recipe"
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fixture struct {
	root          string
	recipeService recipe.RecipeService
	recipePhotos  PhotoService
	stepPhotos    PhotoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	store, err := storage.NewLocalStore(root)
	require.NoError(t, err)

	recipeService := recipe.NewRecipeService(recipe.NewRecipeRepository(testsupport.NewTestDB(t)))
	return &fixture{
		root:          root,
		recipeService: recipeService,
		recipePhotos:  NewRecipePhotoService(recipeService, store),
		stepPhotos:    NewStepPhotoService(recipeService, store),
	}
}

func (f *fixture) createRecipe(t *testing.T) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{Title: "Greek Salad", Category: entities.CategorySalad}
	r.AddStep(&entities.RecipeStep{StepOrder: 1, Title: "Chop", DurationMinutes: 5})
	r.AddStep(&entities.RecipeStep{StepOrder: 2, Title: "Dress", DurationMinutes: 5})
	saved, err := f.recipeService.SaveRecipe(context.Background(), r)
	require.NoError(t, err)
	return saved
}

// rootEntries lists what exists under the photos root.
func (f *fixture) rootEntries(t *testing.T) []string {
	t.Helper()
	var names []string
	err := filepath.WalkDir(f.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != f.root {
			rel, _ := filepath.Rel(f.root, path)
			names = append(names, rel)
		}
		return nil
	})
	require.NoError(t, err)
	return names
}

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func TestUploadPhoto_RejectsBadInputWithoutTouchingDisk(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		svc    PhotoService
		target domain.PhotoTarget
		file   *multipart.FileHeader
		want   error
	}{
		{"missing recipe id", f.recipePhotos, domain.PhotoTarget{}, fileHeader(t, "a.jpg", []byte("x")), domain.ErrMissingRecipeID},
		{"unknown recipe", f.recipePhotos, domain.PhotoTarget{RecipeID: r.ID + 100}, fileHeader(t, "a.jpg", []byte("x")), domain.ErrRecipeNotFound},
		{"text file", f.recipePhotos, domain.PhotoTarget{RecipeID: r.ID}, fileHeader(t, "notes.txt", []byte("x")), domain.ErrInvalidImageFormat},
		{"empty file", f.recipePhotos, domain.PhotoTarget{RecipeID: r.ID}, fileHeader(t, "a.jpg", nil), domain.ErrEmptyFile},
		{"no filename", f.recipePhotos, domain.PhotoTarget{RecipeID: r.ID}, &multipart.FileHeader{Size: 3}, domain.ErrMissingFilename},
		{"missing step id", f.stepPhotos, domain.PhotoTarget{RecipeID: r.ID}, fileHeader(t, "a.jpg", []byte("x")), domain.ErrMissingStepID},
		{"foreign step", f.stepPhotos, domain.PhotoTarget{RecipeID: r.ID, StepID: 9999}, fileHeader(t, "a.jpg", []byte("x")), domain.ErrStepNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filename, err := tc.svc.UploadPhoto(ctx, tc.target, tc.file)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, filename)
			assert.Empty(t, f.rootEntries(t))
		})
	}
}

func TestRecipePhotos_UploadGetDelete(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)
	ctx := context.Background()
	target := domain.PhotoTarget{RecipeID: r.ID}

	filename, err := f.recipePhotos.UploadPhoto(ctx, target, fileHeader(t, "Dish.JPG", []byte("jpeg data")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".jpg"))

	second, err := f.recipePhotos.UploadPhoto(ctx, target, fileHeader(t, "plate.png", []byte("png data")))
	require.NoError(t, err)

	names, err := f.recipePhotos.GetPhotoFilenames(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []string{filename, second}, names)

	obj, err := f.recipePhotos.GetPhoto(ctx, r.ID, filename)
	require.NoError(t, err)
	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	require.NoError(t, obj.Body.Close())
	assert.Equal(t, "jpeg data", string(body))

	require.NoError(t, f.recipePhotos.DeletePhoto(ctx, r.ID, filename))
	_, err = os.Stat(filepath.Join(f.root, recipeDir(r.ID), filename))
	assert.True(t, os.IsNotExist(err))

	names, err = f.recipePhotos.GetPhotoFilenames(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []string{second}, names)

	assert.ErrorIs(t, f.recipePhotos.DeletePhoto(ctx, r.ID, filename), domain.ErrPhotoNotFound)
	_, err = f.recipePhotos.GetPhoto(ctx, r.ID, filename)
	assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
}

func TestRecipePhotos_RejectsEscapingFilenames(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)
	ctx := context.Background()

	for _, name := range []string{"..", ".", "../secret.jpg", `..\secret.jpg`} {
		_, err := f.recipePhotos.GetPhoto(ctx, r.ID, name)
		assert.ErrorIs(t, err, domain.ErrInvalidFilename, name)
		assert.ErrorIs(t, f.recipePhotos.DeletePhoto(ctx, r.ID, name), domain.ErrInvalidFilename, name)
	}
}

func TestRecipePhotos_DeleteAll(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)
	ctx := context.Background()
	target := domain.PhotoTarget{RecipeID: r.ID}

	// nothing uploaded yet
	require.NoError(t, f.recipePhotos.DeleteAllPhotos(ctx, target))
	assert.Empty(t, f.rootEntries(t))

	_, err := f.recipePhotos.UploadPhoto(ctx, target, fileHeader(t, "a.gif", []byte("gif")))
	require.NoError(t, err)
	_, err = f.recipePhotos.UploadPhoto(ctx, target, fileHeader(t, "b.webp", []byte("webp")))
	require.NoError(t, err)

	require.NoError(t, f.recipePhotos.DeleteAllPhotos(ctx, target))
	assert.Empty(t, f.rootEntries(t))

	names, err := f.recipePhotos.GetPhotoFilenames(ctx, target)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestStepPhotos_UploadReplacesPrevious(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)
	ctx := context.Background()
	step := r.Steps[1]
	target := domain.PhotoTarget{RecipeID: r.ID, StepID: step.ID}

	first, err := f.stepPhotos.UploadPhoto(ctx, target, fileHeader(t, "one.jpeg", []byte("1")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, recipeDir(step.ID)+"_"))

	second, err := f.stepPhotos.UploadPhoto(ctx, target, fileHeader(t, "two.bmp", []byte("2")))
	require.NoError(t, err)

	names, err := f.stepPhotos.GetPhotoFilenames(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, []string{second}, names)

	_, err = os.Stat(filepath.Join(f.root, recipeDir(r.ID), first))
	assert.True(t, os.IsNotExist(err))

	got, err := f.recipeService.GetRecipeByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got.FindStep(step.ID).ImageURL)
	assert.Empty(t, got.FindStep(r.Steps[0].ID).ImageURL)
}

func TestStepPhotos_DeleteLeavesRecipePhotos(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)
	ctx := context.Background()
	stepTarget := domain.PhotoTarget{RecipeID: r.ID, StepID: r.Steps[0].ID}

	recipePhoto, err := f.recipePhotos.UploadPhoto(ctx, domain.PhotoTarget{RecipeID: r.ID}, fileHeader(t, "dish.png", []byte("p")))
	require.NoError(t, err)
	stepPhoto, err := f.stepPhotos.UploadPhoto(ctx, stepTarget, fileHeader(t, "chop.png", []byte("s")))
	require.NoError(t, err)

	require.NoError(t, f.stepPhotos.DeleteAllPhotos(ctx, stepTarget))

	names, err := f.stepPhotos.GetPhotoFilenames(ctx, stepTarget)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = os.Stat(filepath.Join(f.root, recipeDir(r.ID), stepPhoto))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(f.root, recipeDir(r.ID), recipePhoto))
	assert.NoError(t, err)

	// a second upload then a delete by name clears the step reference
	stepPhoto, err = f.stepPhotos.UploadPhoto(ctx, stepTarget, fileHeader(t, "chop.png", []byte("s")))
	require.NoError(t, err)
	require.NoError(t, f.stepPhotos.DeletePhoto(ctx, r.ID, stepPhoto))

	got, err := f.recipeService.GetRecipeByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Empty(t, got.FindStep(r.Steps[0].ID).ImageURL)
	assert.Equal(t, []string{recipePhoto}, got.ImageURLs())
}

func TestStepPhotos_DeleteAllUnknownStep(t *testing.T) {
	f := newFixture(t)
	r := f.createRecipe(t)

	err := f.stepPhotos.DeleteAllPhotos(context.Background(), domain.PhotoTarget{RecipeID: r.ID, StepID: 777})
	assert.ErrorIs(t, err, domain.ErrStepNotFound)
}

func TestGetContentType(t *testing.T) {
	svc := NewRecipePhotoService(nil, nil)

	assert.Equal(t, "image/jpeg", svc.GetContentType("a.JPG"))
	assert.Equal(t, "image/jpeg", svc.GetContentType("a.jpeg"))
	assert.Equal(t, "image/png", svc.GetContentType("a.png"))
	assert.Equal(t, "image/gif", svc.GetContentType("a.gif"))
	assert.Equal(t, "image/webp", svc.GetContentType("a.webp"))
	assert.Equal(t, "image/bmp", svc.GetContentType("a.bmp"))
	assert.Equal(t, "application/octet-stream", svc.GetContentType("a.txt"))
	assert.Equal(t, "application/octet-stream", svc.GetContentType("noext"))
}
