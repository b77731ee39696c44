// Package driver runs the rewrite pipeline over files and directories:
// deterministic file discovery, parallel per-file rewriting, and an optional
// content-addressed disk cache of results.
package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"sugarc/internal/imports"
	"sugarc/internal/optable"
	"sugarc/internal/rewrite"
	"sugarc/internal/source"
)

// RewriteDirResult содержит результат переписывания одного файла
type RewriteDirResult struct {
	Path   string         // Относительный путь к файлу
	FileID source.FileID  // ID файла в FileSet
	Result rewrite.Result // Результат переписывания
	Cached bool           // Результат взят из дискового кэша
	Err    error          // Ошибка загрузки файла
}

// listHostFiles возвращает отсортированный список всех *.ts/*.tsx файлов
// в директории. Каталоги node_modules пропускаются целиком.
func listHostFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx") {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// RewriteDir переписывает все host-файлы в директории параллельно. Кэш может
// быть nil; ошибки кэша не фатальны — файл просто переписывается заново.
func RewriteDir(ctx context.Context, dir string, opts rewrite.Options, cache *DiskCache, jobs int) (*source.FileSet, []RewriteDirResult, error) {
	// Собираем список файлов
	files, err := listHostFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	if len(files) == 0 {
		return source.NewFileSetWithBase(dir), nil, nil
	}

	// Ключ кэша должен отражать действующие таблицы, не nil-плейсхолдеры
	if opts.Table == nil {
		opts.Table = optable.Default()
	}
	if opts.Registry == nil {
		opts.Registry = imports.DefaultRegistry()
	}

	// Создаём FileSet и предзагружаем все файлы
	fileSet := source.NewFileSetWithBase(dir)
	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))

	for _, path := range files {
		fileID, err := fileSet.Load(path)
		if err != nil {
			// Сохраняем ошибку загрузки для последующей обработки
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fileID
	}

	// Настраиваем параллелизм
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]RewriteDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func(i int, path string) func() error {
			return func() error {
				// Проверка отмены
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				if loadErr, hadError := loadErrors[path]; hadError {
					results[i] = RewriteDirResult{Path: path, Err: loadErr}
					return nil
				}

				fileID := fileIDs[path]
				file := fileSet.Get(fileID)
				key := keyFor(file, opts)

				var payload DiskPayload
				if hit, err := cache.Get(key, &payload); err == nil && hit {
					results[i] = RewriteDirResult{
						Path:   path,
						FileID: fileID,
						Result: diskPayloadToResult(&payload),
						Cached: true,
					}
					return nil
				}

				res := rewrite.File(file, opts)
				// ошибка записи в кэш не мешает результату
				_ = cache.Put(key, resultToDiskPayload(res))

				results[i] = RewriteDirResult{
					Path:   path,
					FileID: fileID,
					Result: res,
				}
				return nil
			}
		}(i, path))
	}

	// Ждём завершения всех горутин
	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}

	return fileSet, results, nil
}

// RewriteFile загружает и переписывает один файл.
func RewriteFile(path string, opts rewrite.Options) (rewrite.Result, error) {
	fileSet := source.NewFileSet()
	fileID, err := fileSet.Load(path)
	if err != nil {
		return rewrite.Result{}, err
	}
	return rewrite.File(fileSet.Get(fileID), opts), nil
}
