package handler

import (
	"fmt"
	"io"
	"sort"

	"mailstub/internal/cli/output"
	"mailstub/internal/core"
	"mailstub/internal/core/domain"

	"go.uber.org/zap"
)

type ShowCommandHandler struct {
	configRepository   core.ConfigRepository
	snapshotRepository core.SnapshotRepository
	logger             *zap.Logger
}

func ProvideShowCommandHandler(
	configRepository core.ConfigRepository,
	snapshotRepository core.SnapshotRepository,
	logger *zap.Logger,
) ShowCommandHandler {
	return ShowCommandHandler{
		configRepository:   configRepository,
		snapshotRepository: snapshotRepository,
		logger:             logger,
	}
}

func (h *ShowCommandHandler) Handle(out io.Writer, snapshotName string) error {
	path, err := resolveSnapshotPath(h.configRepository, snapshotName)
	if err != nil {
		return err
	}
	h.logger.Debug("loading snapshot", zap.String("path", path))

	snapshot, err := h.snapshotRepository.Load(path)
	if err != nil {
		return err
	}

	printer := output.NewPrinter(out)
	printer.Header(
		fmt.Sprintf(
			"%d rendered %s",
			len(snapshot.Templates),
			output.Plural(len(snapshot.Templates), "template", "templates"),
		),
	)
	for _, template := range snapshot.Templates {
		printTemplate(printer, template)
	}

	fmt.Fprintln(out)
	printer.Header(
		fmt.Sprintf(
			"%d sent %s",
			len(snapshot.Messages),
			output.Plural(len(snapshot.Messages), "message", "messages"),
		),
	)
	for _, message := range snapshot.Messages {
		printer.Item(fmt.Sprintf("%s -> %s", message.From, message.To))
		printer.Detail("subject", message.Subject)
	}

	return nil
}

func printTemplate(printer *output.Printer, template domain.RenderedTemplate) {
	name := template.Name
	if name == "" {
		name = "(unnamed)"
	}
	printer.Item(name)
	if len(template.Parameters) == 0 {
		printer.Note("no parameters")
		return
	}
	keys := make([]string, 0, len(template.Parameters))
	for key := range template.Parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		printer.Detail(key, fmt.Sprintf("%v", template.Parameters[key]))
	}
}
