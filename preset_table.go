package dml

// Registered preset shapes.
const (
	ShapeRect ShapeType = iota
	ShapeRoundRect
	ShapeEllipse
	ShapeTriangle
	ShapeRtTriangle
	ShapeDiamond
	ShapeParallelogram
	ShapeTrapezoid
	ShapePentagon
	ShapeHexagon
	ShapeHeptagon
	ShapeOctagon
	ShapeDecagon
	ShapeDodecagon
	ShapeStar4
	ShapeStar5
	ShapeStar6
	ShapeStar7
	ShapeStar8
	ShapeStar10
	ShapeStar12
	ShapeStar16
	ShapeStar24
	ShapeStar32
	ShapePlus
	ShapeRightArrow
	ShapeLeftArrow
	ShapeUpArrow
	ShapeDownArrow
	ShapeLeftRightArrow
	ShapeUpDownArrow
	ShapeChevron
	ShapeHomePlate
	ShapeSnip1Rect
	ShapeSnip2SameRect
	ShapeRound1Rect
	ShapeRound2SameRect
	ShapePlaque
	ShapeCan
	ShapeCube
	ShapeBevel
	ShapeFrame
	ShapeDonut
	ShapeHeart
	ShapeMoon
	ShapeArc
	ShapePie
	ShapeChord
	ShapeBlockArc
	ShapeCorner
	ShapeDiagStripe
	ShapeFoldedCorner
	ShapeTeardrop
	ShapeLeftBracket
	ShapeRightBracket
	ShapeLeftBrace
	ShapeRightBrace
	ShapeLine
	ShapeFlowChartProcess
	ShapeFlowChartDecision
	ShapeFlowChartTerminator

	shapeTypeCount
)

func adj(name string, v int64) AdjustDefault {
	return AdjustDefault{Name: name, Default: v}
}

var shapeDefs = [shapeTypeCount]shapeDef{
	ShapeRect:          {name: "rect", gen: genRect},
	ShapeRoundRect:     {name: "roundRect", adjust: []AdjustDefault{adj("adj", 16667)}, gen: genRoundRect},
	ShapeEllipse:       {name: "ellipse", gen: genEllipse},
	ShapeTriangle:      {name: "triangle", adjust: []AdjustDefault{adj("adj", 50000)}, gen: genTriangle},
	ShapeRtTriangle:    {name: "rtTriangle", gen: genRtTriangle},
	ShapeDiamond:       {name: "diamond", gen: genDiamond},
	ShapeParallelogram: {name: "parallelogram", adjust: []AdjustDefault{adj("adj", 25000)}, gen: genParallelogram},
	ShapeTrapezoid:     {name: "trapezoid", adjust: []AdjustDefault{adj("adj", 25000)}, gen: genTrapezoid},
	ShapePentagon:      {name: "pentagon", adjust: []AdjustDefault{adj("hf", 105146), adj("vf", 110557)}, gen: genPentagon},
	ShapeHexagon:       {name: "hexagon", adjust: []AdjustDefault{adj("adj", 25000), adj("vf", 115470)}, gen: genHexagon},
	ShapeHeptagon:      {name: "heptagon", adjust: []AdjustDefault{adj("hf", 102572), adj("vf", 105210)}, gen: genHeptagon},
	ShapeOctagon:       {name: "octagon", adjust: []AdjustDefault{adj("adj", 29289)}, gen: genOctagon},
	ShapeDecagon:       {name: "decagon", adjust: []AdjustDefault{adj("vf", 105146)}, gen: genDecagon},
	ShapeDodecagon:     {name: "dodecagon", gen: genDodecagon},

	ShapeStar4:  {name: "star4", adjust: starDefaults(4), gen: starGen(4)},
	ShapeStar5:  {name: "star5", adjust: starDefaults(5), gen: starGen(5)},
	ShapeStar6:  {name: "star6", adjust: starDefaults(6), gen: starGen(6)},
	ShapeStar7:  {name: "star7", adjust: starDefaults(7), gen: starGen(7)},
	ShapeStar8:  {name: "star8", adjust: starDefaults(8), gen: starGen(8)},
	ShapeStar10: {name: "star10", adjust: starDefaults(10), gen: starGen(10)},
	ShapeStar12: {name: "star12", adjust: starDefaults(12), gen: starGen(12)},
	ShapeStar16: {name: "star16", adjust: starDefaults(16), gen: starGen(16)},
	ShapeStar24: {name: "star24", adjust: starDefaults(24), gen: starGen(24)},
	ShapeStar32: {name: "star32", adjust: starDefaults(32), gen: starGen(32)},

	ShapePlus:           {name: "plus", adjust: []AdjustDefault{adj("adj", 25000)}, gen: genPlus},
	ShapeRightArrow:     {name: "rightArrow", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genRightArrow},
	ShapeLeftArrow:      {name: "leftArrow", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genLeftArrow},
	ShapeUpArrow:        {name: "upArrow", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genUpArrow},
	ShapeDownArrow:      {name: "downArrow", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genDownArrow},
	ShapeLeftRightArrow: {name: "leftRightArrow", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genLeftRightArrow},
	ShapeUpDownArrow:    {name: "upDownArrow", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genUpDownArrow},
	ShapeChevron:        {name: "chevron", adjust: []AdjustDefault{adj("adj", 50000)}, gen: genChevron},
	ShapeHomePlate:      {name: "homePlate", adjust: []AdjustDefault{adj("adj", 50000)}, gen: genHomePlate},

	ShapeSnip1Rect:      {name: "snip1Rect", adjust: []AdjustDefault{adj("adj", 16667)}, gen: genSnip1Rect},
	ShapeSnip2SameRect:  {name: "snip2SameRect", adjust: []AdjustDefault{adj("adj1", 16667), adj("adj2", 0)}, gen: genSnip2SameRect},
	ShapeRound1Rect:     {name: "round1Rect", adjust: []AdjustDefault{adj("adj", 16667)}, gen: genRound1Rect},
	ShapeRound2SameRect: {name: "round2SameRect", adjust: []AdjustDefault{adj("adj1", 16667), adj("adj2", 0)}, gen: genRound2SameRect},
	ShapePlaque:         {name: "plaque", adjust: []AdjustDefault{adj("adj", 16667)}, gen: genPlaque},

	ShapeCan:      {name: "can", adjust: []AdjustDefault{adj("adj", 25000)}, gen: genCan},
	ShapeCube:     {name: "cube", adjust: []AdjustDefault{adj("adj", 25000)}, gen: genCube},
	ShapeBevel:    {name: "bevel", adjust: []AdjustDefault{adj("adj", 12500)}, gen: genBevel},
	ShapeFrame:    {name: "frame", adjust: []AdjustDefault{adj("adj1", 12500)}, gen: genFrame},
	ShapeDonut:    {name: "donut", adjust: []AdjustDefault{adj("adj", 25000)}, gen: genDonut},
	ShapeHeart:    {name: "heart", gen: genHeart},
	ShapeMoon:     {name: "moon", adjust: []AdjustDefault{adj("adj", 50000)}, gen: genMoon},
	ShapeArc:      {name: "arc", adjust: []AdjustDefault{adj("adj1", 16200000), adj("adj2", 0)}, gen: genArc},
	ShapePie:      {name: "pie", adjust: []AdjustDefault{adj("adj1", 0), adj("adj2", 16200000)}, gen: genPie},
	ShapeChord:    {name: "chord", adjust: []AdjustDefault{adj("adj1", 2700000), adj("adj2", 16200000)}, gen: genChord},
	ShapeBlockArc: {name: "blockArc", adjust: []AdjustDefault{adj("adj1", 10800000), adj("adj2", 0), adj("adj3", 25000)}, gen: genBlockArc},

	ShapeCorner:       {name: "corner", adjust: []AdjustDefault{adj("adj1", 50000), adj("adj2", 50000)}, gen: genCorner},
	ShapeDiagStripe:   {name: "diagStripe", adjust: []AdjustDefault{adj("adj", 50000)}, gen: genDiagStripe},
	ShapeFoldedCorner: {name: "foldedCorner", adjust: []AdjustDefault{adj("adj", 16667)}, gen: genFoldedCorner},
	ShapeTeardrop:     {name: "teardrop", adjust: []AdjustDefault{adj("adj", 100000)}, gen: genTeardrop},

	ShapeLeftBracket:  {name: "leftBracket", adjust: []AdjustDefault{adj("adj", 8333)}, gen: genLeftBracket},
	ShapeRightBracket: {name: "rightBracket", adjust: []AdjustDefault{adj("adj", 8333)}, gen: genRightBracket},
	ShapeLeftBrace:    {name: "leftBrace", adjust: []AdjustDefault{adj("adj1", 8333), adj("adj2", 50000)}, gen: genLeftBrace},
	ShapeRightBrace:   {name: "rightBrace", adjust: []AdjustDefault{adj("adj1", 8333), adj("adj2", 50000)}, gen: genRightBrace},

	ShapeLine:                {name: "line", gen: genLine},
	ShapeFlowChartProcess:    {name: "flowChartProcess", gen: genRect},
	ShapeFlowChartDecision:   {name: "flowChartDecision", gen: genDiamond},
	ShapeFlowChartTerminator: {name: "flowChartTerminator", gen: genFlowChartTerminator},
}
