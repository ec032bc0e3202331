// Package pdf génère l'attestation d'inscription à l'ordre pour un ingénieur actif.
//
// Layout de la page A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  EN-TÊTE : Ordre des Ingénieurs — OMIGEC                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TITRE : ATTESTATION D'INSCRIPTION                          │
//	│  CORPS : identité (nom, NNI), cursus, domaines              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALIDITÉ : cotisation à jour jusqu'au JJ/MM/AAAA           │
//	│  PIED : date d'émission + mention de vérification en ligne  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/omigec/plateforme-api/internal/application/usecase"
	"github.com/omigec/plateforme-api/internal/domain/entity"
)

var _ usecase.AttestationGenerator = (*MarotoAttestationGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 87, Blue: 63}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoAttestationGenerator implémente usecase.AttestationGenerator avec Maroto v2.
type MarotoAttestationGenerator struct{}

// NewMarotoAttestationGenerator construit le générateur.
func NewMarotoAttestationGenerator() *MarotoAttestationGenerator {
	return &MarotoAttestationGenerator{}
}

// Generate produit le PDF d'attestation. L'appelant garantit que l'ingénieur est actif.
func (g *MarotoAttestationGenerator) Generate(ing *entity.Ingenieur, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Attestation d'inscription OMIGEC", true).
		WithAuthor("OMIGEC", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.8}))
	m.AddRows(titleRow())
	m.AddRows(bodyRows(ing)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(validityRow(ing))
	m.AddRows(footerRow(now))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer attestation: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(20).Add(
		col.New(12).Add(
			text.New("ORDRE DES INGÉNIEURS — OMIGEC", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
			text.New("Ordre Mauritanien des Ingénieurs en Génie Civil", props.Text{
				Size: 9, Align: align.Center, Top: 12, Color: colorGray,
			}),
		),
	)
}

func titleRow() core.Row {
	return row.New(22).Add(
		col.New(12).Add(
			text.New("ATTESTATION D'INSCRIPTION", props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 8,
			}),
		),
	)
}

func bodyRows(ing *entity.Ingenieur) []core.Row {
	field := func(label, value string) core.Row {
		return row.New(9).Add(
			col.New(4).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Color: colorGray,
			})),
			col.New(8).Add(text.New(value, props.Text{Size: 10, Top: 2})),
		)
	}

	rows := []core.Row{
		row.New(14).Add(col.New(12).Add(text.New(
			"L'Ordre atteste que l'ingénieur dont l'identité suit est régulièrement "+
				"inscrit au tableau de l'Ordre et à jour de sa cotisation.",
			props.Text{Size: 10, Top: 2},
		))),
		field("Nom complet", ing.Nom),
		field("NNI", ing.NNI),
		field("Diplôme", fmt.Sprintf("%s (%d)", ing.DiplomeTitre, ing.AnneeDiplome)),
		field("Université", fmt.Sprintf("%s — %s", ing.Universite, ing.Pays)),
	}
	if len(ing.Domaines) > 0 {
		rows = append(rows, field("Domaines", strings.Join(ing.Domaines, ", ")))
	}
	return rows
}

func validityRow(ing *entity.Ingenieur) core.Row {
	validite := "—"
	if ing.AbonnementExpire != nil {
		validite = ing.AbonnementExpire.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cotisation valide jusqu'au "+validite, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: colorPrimary, Top: 3,
			}),
		),
	)
}

func footerRow(now time.Time) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("Fait le "+now.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
			text.New("La validité de cette attestation peut être vérifiée à tout moment "+
				"via la recherche publique du site de l'Ordre.", props.Text{
				Size: 8, Align: align.Center, Top: 10, Color: colorGray,
			}),
		),
	)
}
