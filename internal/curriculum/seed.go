package curriculum

import "github.com/mathevilla/server/internal/store"

// SeedTasks returns the base question bank, roughly ten tasks per grade.
func SeedTasks() []store.Task {
	return []store.Task{
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 125 + 378?", Type: "text_input", CorrectAnswer: "503", Explanation: "125 + 378 = 503. Addiere zuerst die Einer, dann die Zehner, dann die Hunderter.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 456 - 189?", Type: "text_input", CorrectAnswer: "267", Explanation: "456 - 189 = 267. Bei der Subtraktion muss manchmal übertragen werden.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 12 × 8?", Type: "multiple_choice", Options: []string{"86", "96", "106", "92"}, CorrectAnswer: "96", Explanation: "12 × 8 = 96. Das ist ein Ergebnis aus dem kleinen Einmaleins.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 144 ÷ 12?", Type: "text_input", CorrectAnswer: "12", Explanation: "144 ÷ 12 = 12. Division ist die Umkehrung der Multiplikation.", XPReward: 10, Difficulty: "mittel"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Berechne: (15 + 25) × 3", Type: "text_input", CorrectAnswer: "120", Explanation: "Klammer zuerst: 15 + 25 = 40, dann 40 × 3 = 120.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Welcher Bruch ist größer: 1/2 oder 1/4?", Type: "multiple_choice", Options: []string{"1/2", "1/4", "Beide gleich"}, CorrectAnswer: "1/2", Explanation: "1/2 ist größer als 1/4. Je kleiner der Nenner, desto größer der Anteil.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Was ist 1/4 von 20?", Type: "text_input", CorrectAnswer: "5", Explanation: "1/4 von 20 = 20 ÷ 4 = 5.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Kürze den Bruch 6/12 so weit wie möglich.", Type: "text_input", CorrectAnswer: "1/2", Explanation: "6/12 = 1/2. Teile Zähler und Nenner durch 6.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 5, Topic: "Dezimalzahlen", Question: "Schreibe 0,75 als Bruch.", Type: "multiple_choice", Options: []string{"3/4", "7/5", "1/2", "2/3"}, CorrectAnswer: "3/4", Explanation: "0,75 = 75/100 = 3/4.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 5, Topic: "Dezimalzahlen", Question: "Was ergibt 2,5 + 1,75?", Type: "text_input", CorrectAnswer: "4,25", Explanation: "2,5 + 1,75 = 4,25. Achte auf die Kommastellen.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Wie viele Ecken hat ein Rechteck?", Type: "text_input", CorrectAnswer: "4", Explanation: "Ein Rechteck hat 4 Ecken, 4 Seiten und 4 rechte Winkel.", XPReward: 5, Difficulty: "leicht"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Berechne den Umfang eines Quadrats mit Seitenlänge 7 cm.", Type: "text_input", CorrectAnswer: "28", Explanation: "Umfang = 4 × Seitenlänge = 4 × 7 = 28 cm.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Größen und Einheiten", Question: "Wie viele Zentimeter sind 2,5 Meter?", Type: "text_input", CorrectAnswer: "250", Explanation: "1 m = 100 cm, also 2,5 m = 250 cm.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Größen und Einheiten", Question: "Wie viele Gramm sind 3 kg?", Type: "text_input", CorrectAnswer: "3000", Explanation: "1 kg = 1000 g, also 3 kg = 3000 g.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Diagramme", Question: "In einem Säulendiagramm zeigt eine Säule den Wert 45. Die nächste Säule ist halb so hoch. Welchen Wert zeigt sie?", Type: "text_input", CorrectAnswer: "22,5", Explanation: "Die Hälfte von 45 ist 22,5.", XPReward: 10, Difficulty: "mittel"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Was ergibt 2/3 + 1/6?", Type: "multiple_choice", Options: []string{"5/6", "3/9", "1/2", "4/6"}, CorrectAnswer: "5/6", Explanation: "2/3 = 4/6, also 4/6 + 1/6 = 5/6.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Berechne 3/4 × 2/5.", Type: "text_input", CorrectAnswer: "6/20", Explanation: "3/4 × 2/5 = 6/20 = 3/10.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Was ergibt 5/6 - 1/3?", Type: "text_input", CorrectAnswer: "1/2", Explanation: "1/3 = 2/6, also 5/6 - 2/6 = 3/6 = 1/2.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Berechne 3/4 ÷ 1/2.", Type: "text_input", CorrectAnswer: "3/2", Explanation: "Division durch einen Bruch = Multiplikation mit dem Kehrwert: 3/4 × 2/1 = 6/4 = 3/2.", XPReward: 20, Difficulty: "schwer"},
		{Grade: 6, Topic: "Dezimalzahlen erweitert", Question: "Was ergibt 3,6 × 0,5?", Type: "text_input", CorrectAnswer: "1,8", Explanation: "3,6 × 0,5 = 1,8. Multiplizieren mit 0,5 ist wie durch 2 teilen.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Dezimalzahlen erweitert", Question: "Runde 3,456 auf zwei Dezimalstellen.", Type: "text_input", CorrectAnswer: "3,46", Explanation: "Die dritte Dezimalstelle ist 6, also wird aufgerundet: 3,46.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Prozentrechnung Einführung", Question: "Was sind 25% von 80?", Type: "text_input", CorrectAnswer: "20", Explanation: "25% = 1/4, also 80 ÷ 4 = 20.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Prozentrechnung Einführung", Question: "Schreibe 0,35 als Prozentzahl.", Type: "text_input", CorrectAnswer: "35", Explanation: "0,35 × 100 = 35%.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Winkel", Question: "Wie groß ist ein rechter Winkel?", Type: "multiple_choice", Options: []string{"45°", "90°", "180°", "360°"}, CorrectAnswer: "90°", Explanation: "Ein rechter Winkel hat genau 90°.", XPReward: 5, Difficulty: "leicht"},
		{Grade: 6, Topic: "Winkel", Question: "Zwei Winkel ergänzen sich zu 180°. Einer ist 65°. Wie groß ist der andere?", Type: "text_input", CorrectAnswer: "115", Explanation: "180° - 65° = 115°. Diese Winkel heißen Supplementwinkel.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Flächen", Question: "Berechne die Fläche eines Rechtecks mit a = 8 cm und b = 5 cm.", Type: "text_input", CorrectAnswer: "40", Explanation: "Fläche = a × b = 8 × 5 = 40 cm².", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Flächen", Question: "Berechne die Fläche eines Dreiecks mit g = 10 cm und h = 6 cm.", Type: "text_input", CorrectAnswer: "30", Explanation: "Fläche = (g × h) ÷ 2 = (10 × 6) ÷ 2 = 30 cm².", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Teilbarkeit", Question: "Ist 126 durch 3 teilbar?", Type: "multiple_choice", Options: []string{"Ja", "Nein"}, CorrectAnswer: "Ja", Explanation: "Quersumme: 1+2+6=9, und 9 ist durch 3 teilbar, also ist 126 durch 3 teilbar.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Teilbarkeit", Question: "Was ist der ggT von 24 und 36?", Type: "text_input", CorrectAnswer: "12", Explanation: "24 = 2³ × 3, 36 = 2² × 3². Der ggT ist 2² × 3 = 12.", XPReward: 20, Difficulty: "schwer"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-5) + 8?", Type: "text_input", CorrectAnswer: "3", Explanation: "(-5) + 8 = 3. Von -5 aus 8 Schritte nach rechts.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-3) × (-4)?", Type: "text_input", CorrectAnswer: "12", Explanation: "Minus mal Minus ergibt Plus: (-3) × (-4) = 12.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Ordne: -2,5; 0; -3; 1,5 von klein nach groß.", Type: "multiple_choice", Options: []string{"-3; -2,5; 0; 1,5", "-2,5; -3; 0; 1,5", "0; -2,5; -3; 1,5"}, CorrectAnswer: "-3; -2,5; 0; 1,5", Explanation: "Negative Zahlen sind kleiner als 0. -3 < -2,5 < 0 < 1,5.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Terme und Gleichungen", Question: "Löse: x + 7 = 15", Type: "text_input", CorrectAnswer: "8", Explanation: "x + 7 = 15 → x = 15 - 7 = 8.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Terme und Gleichungen", Question: "Löse: 3x - 5 = 16", Type: "text_input", CorrectAnswer: "7", Explanation: "3x - 5 = 16 → 3x = 21 → x = 7.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Terme und Gleichungen", Question: "Vereinfache: 5x + 3 - 2x + 7", Type: "text_input", CorrectAnswer: "3x + 10", Explanation: "5x - 2x = 3x und 3 + 7 = 10, also 3x + 10.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Proportionalität", Question: "3 Äpfel kosten 1,50€. Wie viel kosten 7 Äpfel?", Type: "text_input", CorrectAnswer: "3,50", Explanation: "Ein Apfel kostet 0,50€. 7 × 0,50€ = 3,50€.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Proportionalität", Question: "y ist proportional zu x. Wenn x = 4, ist y = 12. Was ist y, wenn x = 7?", Type: "text_input", CorrectAnswer: "21", Explanation: "y = k × x. k = 12/4 = 3. Bei x = 7: y = 3 × 7 = 21.", XPReward: 20, Difficulty: "schwer"},
		{Grade: 7, Topic: "Dreiecke", Question: "Die Winkelsumme in einem Dreieck beträgt immer...", Type: "multiple_choice", Options: []string{"90°", "180°", "270°", "360°"}, CorrectAnswer: "180°", Explanation: "Die Summe aller Winkel in einem Dreieck ist immer 180°.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Dreiecke", Question: "Zwei Winkel eines Dreiecks sind 45° und 75°. Wie groß ist der dritte?", Type: "text_input", CorrectAnswer: "60", Explanation: "180° - 45° - 75° = 60°.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Prozentrechnung", Question: "Ein Artikel kostet 80€ und wird um 20% reduziert. Was ist der neue Preis?", Type: "text_input", CorrectAnswer: "64", Explanation: "20% von 80€ = 16€. Neuer Preis: 80€ - 16€ = 64€.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Prozentrechnung", Question: "Von 50 Schülern sind 30 Mädchen. Wie viel Prozent?", Type: "text_input", CorrectAnswer: "60", Explanation: "30/50 = 0,6 = 60%.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Statistik", Question: "Der Mittelwert von 4, 7, 10, 3 ist...", Type: "text_input", CorrectAnswer: "6", Explanation: "(4+7+10+3)/4 = 24/4 = 6.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Lineare Funktionen", Question: "Welche Steigung hat die Gerade y = 3x - 2?", Type: "text_input", CorrectAnswer: "3", Explanation: "In y = mx + b ist m die Steigung. Hier ist m = 3.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Lineare Funktionen", Question: "Wo schneidet y = 2x + 4 die y-Achse?", Type: "text_input", CorrectAnswer: "4", Explanation: "Der y-Achsenabschnitt ist b = 4. Die Gerade schneidet bei (0, 4).", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Lineare Funktionen", Question: "Bestimme die Gleichung einer Geraden durch (0,1) mit Steigung 2.", Type: "multiple_choice", Options: []string{"y = 2x + 1", "y = x + 2", "y = 2x - 1"}, CorrectAnswer: "y = 2x + 1", Explanation: "y = mx + b mit m = 2 und b = 1 ergibt y = 2x + 1.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Lineare Gleichungssysteme", Question: "Löse: x + y = 5 und x - y = 1. Was ist x?", Type: "text_input", CorrectAnswer: "3", Explanation: "Addiere beide: 2x = 6 → x = 3.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 8, Topic: "Lineare Gleichungssysteme", Question: "Löse: x + y = 5 und x - y = 1. Was ist y?", Type: "text_input", CorrectAnswer: "2", Explanation: "Mit x = 3: 3 + y = 5 → y = 2.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 8, Topic: "Vierecke", Question: "Was ist die Flächenformel eines Parallelogramms?", Type: "multiple_choice", Options: []string{"A = a × b", "A = a × h", "A = (a × b)/2"}, CorrectAnswer: "A = a × h", Explanation: "Fläche Parallelogramm = Grundseite × Höhe.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Vierecke", Question: "Ein Parallelogramm hat a = 8 cm und h = 5 cm. Berechne die Fläche.", Type: "text_input", CorrectAnswer: "40", Explanation: "A = a × h = 8 × 5 = 40 cm².", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Kreis", Question: "Was ist der Umfang eines Kreises mit r = 7 cm? (π ≈ 3,14)", Type: "text_input", CorrectAnswer: "43,96", Explanation: "U = 2πr = 2 × 3,14 × 7 = 43,96 cm.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Kreis", Question: "Berechne die Fläche eines Kreises mit r = 5 cm. (π ≈ 3,14)", Type: "text_input", CorrectAnswer: "78,5", Explanation: "A = πr² = 3,14 × 25 = 78,5 cm².", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Wahrscheinlichkeit", Question: "Ein Würfel wird geworfen. Wie groß ist die Wahrscheinlichkeit für eine 6?", Type: "text_input", CorrectAnswer: "1/6", Explanation: "Es gibt 6 mögliche Ergebnisse, davon ist eines die 6. P = 1/6.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Wahrscheinlichkeit", Question: "Zwei Münzen werden geworfen. Wie groß ist P(2× Kopf)?", Type: "text_input", CorrectAnswer: "1/4", Explanation: "Mögliche Ergebnisse: KK, KZ, ZK, ZZ. Nur KK passt. P = 1/4.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Potenzen", Question: "Was ergibt 2³ × 2²?", Type: "text_input", CorrectAnswer: "32", Explanation: "2³ × 2² = 2^(3+2) = 2⁵ = 32.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Potenzen", Question: "Vereinfache: (x³)²", Type: "text_input", CorrectAnswer: "x^6", Explanation: "(x³)² = x^(3×2) = x⁶.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 9, Topic: "Quadratische Funktionen", Question: "Wo hat y = x² - 4 ihre Nullstellen?", Type: "multiple_choice", Options: []string{"x = ±2", "x = ±4", "x = 2", "x = 0"}, CorrectAnswer: "x = ±2", Explanation: "x² - 4 = 0 → x² = 4 → x = ±2.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 9, Topic: "Quadratische Funktionen", Question: "Wo ist der Scheitelpunkt von y = (x-3)² + 2?", Type: "text_input", CorrectAnswer: "(3,2)", Explanation: "Scheitelpunktform: y = (x-d)² + e hat Scheitelpunkt (d, e) = (3, 2).", XPReward: 20, Difficulty: "mittel"},
		{Grade: 9, Topic: "Quadratische Gleichungen", Question: "Löse: x² = 49", Type: "text_input", CorrectAnswer: "±7", Explanation: "x² = 49 → x = ±7.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Quadratische Gleichungen", Question: "Löse mit pq-Formel: x² - 5x + 6 = 0", Type: "multiple_choice", Options: []string{"x = 2 oder x = 3", "x = -2 oder x = -3", "x = 1 oder x = 6"}, CorrectAnswer: "x = 2 oder x = 3", Explanation: "p = -5, q = 6. x = 2,5 ± √(6,25-6) = 2,5 ± 0,5. Also x = 2 oder x = 3.", XPReward: 25, Difficulty: "schwer"},
		{Grade: 9, Topic: "Satz des Pythagoras", Question: "In einem rechtwinkligen Dreieck sind a = 3 und b = 4. Wie lang ist c?", Type: "text_input", CorrectAnswer: "5", Explanation: "c² = a² + b² = 9 + 16 = 25 → c = 5.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 9, Topic: "Satz des Pythagoras", Question: "In einem rechtwinkligen Dreieck sind a = 5 und c = 13. Wie lang ist b?", Type: "text_input", CorrectAnswer: "12", Explanation: "b² = c² - a² = 169 - 25 = 144 → b = 12.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 9, Topic: "Wurzeln", Question: "Was ist √144?", Type: "text_input", CorrectAnswer: "12", Explanation: "12 × 12 = 144, also √144 = 12.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Wurzeln", Question: "Vereinfache: √50", Type: "text_input", CorrectAnswer: "5√2", Explanation: "√50 = √(25×2) = 5√2.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 9, Topic: "Ähnlichkeit", Question: "Zwei ähnliche Dreiecke haben Seitenverhältnis 2:3. Die kleinere Seite ist 8 cm. Wie lang ist die größere?", Type: "text_input", CorrectAnswer: "12", Explanation: "8 × (3/2) = 12 cm.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 9, Topic: "Trigonometrie", Question: "In einem rechtwinkligen Dreieck ist α = 30° und die Hypotenuse c = 10. Wie lang ist die Gegenkathete?", Type: "text_input", CorrectAnswer: "5", Explanation: "sin(30°) = Gegenkathete/Hypotenuse = a/10. sin(30°) = 0,5, also a = 5.", XPReward: 25, Difficulty: "schwer"},
		{Grade: 10, Topic: "Exponentialfunktionen", Question: "Was ist 2⁰?", Type: "text_input", CorrectAnswer: "1", Explanation: "Jede Zahl (außer 0) hoch 0 ist 1.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Exponentialfunktionen", Question: "Löse: 2^x = 16", Type: "text_input", CorrectAnswer: "4", Explanation: "2⁴ = 16, also x = 4.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Logarithmen", Question: "Was ist log₂(8)?", Type: "text_input", CorrectAnswer: "3", Explanation: "2³ = 8, also log₂(8) = 3.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Logarithmen", Question: "Was ist lg(100)?", Type: "text_input", CorrectAnswer: "2", Explanation: "10² = 100, also lg(100) = 2.", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Körperberechnungen", Question: "Berechne das Volumen eines Würfels mit a = 5 cm.", Type: "text_input", CorrectAnswer: "125", Explanation: "V = a³ = 5³ = 125 cm³.", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Körperberechnungen", Question: "Berechne das Volumen einer Kugel mit r = 3 cm. (π ≈ 3,14)", Type: "text_input", CorrectAnswer: "113,04", Explanation: "V = (4/3)πr³ = (4/3) × 3,14 × 27 ≈ 113,04 cm³.", XPReward: 25, Difficulty: "schwer"},
		{Grade: 10, Topic: "Stochastik", Question: "Bei einem Binomialexperiment ist n = 4 und p = 0,5. Wie groß ist P(X = 2)?", Type: "multiple_choice", Options: []string{"0,25", "0,375", "0,5"}, CorrectAnswer: "0,375", Explanation: "P(X=2) = C(4,2) × 0,5² × 0,5² = 6 × 0,0625 = 0,375.", XPReward: 30, Difficulty: "schwer"},
		{Grade: 10, Topic: "Stochastik", Question: "Der Erwartungswert eines fairen Würfels ist...", Type: "text_input", CorrectAnswer: "3,5", Explanation: "E(X) = (1+2+3+4+5+6)/6 = 21/6 = 3,5.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 10, Topic: "Wachstum", Question: "Ein Kapital von 1000€ wächst mit 5% jährlich. Wie viel ist es nach 2 Jahren?", Type: "text_input", CorrectAnswer: "1102,5", Explanation: "K = 1000 × 1,05² = 1000 × 1,1025 = 1102,5€.", XPReward: 20, Difficulty: "mittel"},
		{Grade: 10, Topic: "Wachstum", Question: "Eine Bakterienkultur verdoppelt sich alle 3 Stunden. Nach wie vielen Stunden ist sie 8-mal so groß?", Type: "text_input", CorrectAnswer: "9", Explanation: "8 = 2³, also 3 Verdopplungen = 3 × 3 = 9 Stunden.", XPReward: 25, Difficulty: "schwer"},
		{Grade: 10, Topic: "Vektorrechnung", Question: "Addiere die Vektoren: (2,3) + (4,1)", Type: "text_input", CorrectAnswer: "(6,4)", Explanation: "(2+4, 3+1) = (6, 4).", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Vektorrechnung", Question: "Berechne den Betrag von (3,4).", Type: "text_input", CorrectAnswer: "5", Explanation: "|v| = √(3² + 4²) = √25 = 5.", XPReward: 20, Difficulty: "mittel"},
	}
}

// AdditionalTasks returns the extension set that brings each grade to 20-25 tasks.
func AdditionalTasks() []store.Task {
	return []store.Task{
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 234 + 567?", Type: "text_input", CorrectAnswer: "801", Explanation: "234 + 567 = 801", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 1000 - 456?", Type: "text_input", CorrectAnswer: "544", Explanation: "1000 - 456 = 544", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 15 × 6?", Type: "multiple_choice", Options: []string{"80", "90", "85", "95"}, CorrectAnswer: "90", Explanation: "15 × 6 = 90", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ergibt 72 ÷ 8?", Type: "text_input", CorrectAnswer: "9", Explanation: "72 ÷ 8 = 9", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Was ist 1/2 von 50?", Type: "text_input", CorrectAnswer: "25", Explanation: "1/2 von 50 = 50 ÷ 2 = 25", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Erweitere 2/3 mit 4.", Type: "text_input", CorrectAnswer: "8/12", Explanation: "2/3 × 4/4 = 8/12", XPReward: 15, Difficulty: "mittel"},
		{Grade: 5, Topic: "Dezimalzahlen", Question: "Was ergibt 3,5 - 1,2?", Type: "text_input", CorrectAnswer: "2,3", Explanation: "3,5 - 1,2 = 2,3", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Berechne die Fläche eines Quadrats mit a = 5 cm.", Type: "text_input", CorrectAnswer: "25", Explanation: "A = a² = 5² = 25 cm²", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Größen und Einheiten", Question: "Wie viele Minuten sind 2,5 Stunden?", Type: "text_input", CorrectAnswer: "150", Explanation: "2,5 × 60 = 150 Minuten", XPReward: 10, Difficulty: "leicht"},
		{Grade: 5, Topic: "Diagramme", Question: "In einem Balkendiagramm zeigt ein Balken 30. Der andere ist doppelt so lang. Welchen Wert zeigt er?", Type: "text_input", CorrectAnswer: "60", Explanation: "30 × 2 = 60", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Was ergibt 1/2 + 1/4?", Type: "multiple_choice", Options: []string{"2/6", "3/4", "1/3", "2/4"}, CorrectAnswer: "3/4", Explanation: "1/2 = 2/4, also 2/4 + 1/4 = 3/4", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Berechne 2/5 × 3/4.", Type: "text_input", CorrectAnswer: "6/20", Explanation: "2/5 × 3/4 = 6/20 = 3/10", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Dezimalzahlen erweitert", Question: "Was ergibt 4,2 ÷ 0,7?", Type: "text_input", CorrectAnswer: "6", Explanation: "4,2 ÷ 0,7 = 42 ÷ 7 = 6", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Prozentrechnung Einführung", Question: "Was sind 50% von 120?", Type: "text_input", CorrectAnswer: "60", Explanation: "50% = 1/2, also 120 ÷ 2 = 60", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Prozentrechnung Einführung", Question: "Was sind 10% von 250?", Type: "text_input", CorrectAnswer: "25", Explanation: "10% = 1/10, also 250 ÷ 10 = 25", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Winkel", Question: "Wie groß ist ein gestreckter Winkel?", Type: "multiple_choice", Options: []string{"90°", "180°", "270°", "360°"}, CorrectAnswer: "180°", Explanation: "Ein gestreckter Winkel hat 180°", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Flächen", Question: "Berechne den Umfang eines Rechtecks mit a = 6 cm und b = 4 cm.", Type: "text_input", CorrectAnswer: "20", Explanation: "U = 2(a + b) = 2(6 + 4) = 20 cm", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Teilbarkeit", Question: "Ist 245 durch 5 teilbar?", Type: "multiple_choice", Options: []string{"Ja", "Nein"}, CorrectAnswer: "Ja", Explanation: "245 endet auf 5, also ist es durch 5 teilbar", XPReward: 10, Difficulty: "leicht"},
		{Grade: 6, Topic: "Teilbarkeit", Question: "Was ist das kgV von 4 und 6?", Type: "text_input", CorrectAnswer: "12", Explanation: "kgV(4,6) = 12", XPReward: 15, Difficulty: "mittel"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Wandle 7/4 in eine gemischte Zahl um.", Type: "text_input", CorrectAnswer: "1 3/4", Explanation: "7/4 = 1 + 3/4 = 1 3/4", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-8) - (-3)?", Type: "text_input", CorrectAnswer: "-5", Explanation: "(-8) - (-3) = -8 + 3 = -5", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-12) ÷ 4?", Type: "text_input", CorrectAnswer: "-3", Explanation: "(-12) ÷ 4 = -3", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Terme und Gleichungen", Question: "Löse: 2x + 3 = 11", Type: "text_input", CorrectAnswer: "4", Explanation: "2x + 3 = 11 → 2x = 8 → x = 4", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Terme und Gleichungen", Question: "Vereinfache: 4a + 2b - a + 3b", Type: "text_input", CorrectAnswer: "3a + 5b", Explanation: "4a - a = 3a, 2b + 3b = 5b", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Proportionalität", Question: "5 Arbeiter brauchen 8 Tage. Wie lange brauchen 4 Arbeiter?", Type: "text_input", CorrectAnswer: "10", Explanation: "Antiproportional: 5 × 8 = 4 × x → x = 10", XPReward: 20, Difficulty: "schwer"},
		{Grade: 7, Topic: "Dreiecke", Question: "Welches Dreieck hat drei gleich lange Seiten?", Type: "multiple_choice", Options: []string{"Gleichschenkliges", "Gleichseitiges", "Rechtwinkliges"}, CorrectAnswer: "Gleichseitiges", Explanation: "Ein gleichseitiges Dreieck hat drei gleich lange Seiten", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Prozentrechnung", Question: "Ein Preis steigt von 50€ auf 60€. Um wie viel Prozent?", Type: "text_input", CorrectAnswer: "20", Explanation: "Erhöhung: 10€. 10/50 = 0,2 = 20%", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Statistik", Question: "Berechne den Median von: 3, 7, 2, 9, 5", Type: "text_input", CorrectAnswer: "5", Explanation: "Sortiert: 2, 3, 5, 7, 9. Median ist der mittlere Wert: 5", XPReward: 15, Difficulty: "mittel"},
		{Grade: 7, Topic: "Statistik", Question: "Was ist die Spannweite von: 12, 5, 8, 15, 3?", Type: "text_input", CorrectAnswer: "12", Explanation: "Spannweite = Maximum - Minimum = 15 - 3 = 12", XPReward: 10, Difficulty: "leicht"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Berechne: |−7| + |3|", Type: "text_input", CorrectAnswer: "10", Explanation: "|−7| = 7 und |3| = 3, also 7 + 3 = 10", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Lineare Funktionen", Question: "Wo schneidet y = 3x - 6 die x-Achse?", Type: "text_input", CorrectAnswer: "2", Explanation: "0 = 3x - 6 → x = 2", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Lineare Funktionen", Question: "Sind y = 2x + 1 und y = 2x - 3 parallel?", Type: "multiple_choice", Options: []string{"Ja", "Nein"}, CorrectAnswer: "Ja", Explanation: "Beide haben Steigung m = 2, also sind sie parallel", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Lineare Gleichungssysteme", Question: "Löse: x + y = 10 und x - y = 4. Was ist x?", Type: "text_input", CorrectAnswer: "7", Explanation: "Addiere: 2x = 14 → x = 7", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Lineare Gleichungssysteme", Question: "Löse: 2x + y = 8 und x + y = 5. Was ist y?", Type: "text_input", CorrectAnswer: "2", Explanation: "Subtrahiere: x = 3. Einsetzen: y = 2", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Vierecke", Question: "Was ist die Diagonale eines Quadrats mit a = 4 cm? (Antwort als √)", Type: "text_input", CorrectAnswer: "4√2", Explanation: "d = a√2 = 4√2", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Kreis", Question: "Was ist der Durchmesser eines Kreises mit r = 5 cm?", Type: "text_input", CorrectAnswer: "10", Explanation: "d = 2r = 2 × 5 = 10 cm", XPReward: 5, Difficulty: "leicht"},
		{Grade: 8, Topic: "Wahrscheinlichkeit", Question: "Wie groß ist P(gerade Zahl) beim Würfeln?", Type: "text_input", CorrectAnswer: "1/2", Explanation: "3 gerade Zahlen (2,4,6) von 6. P = 3/6 = 1/2", XPReward: 10, Difficulty: "leicht"},
		{Grade: 8, Topic: "Wahrscheinlichkeit", Question: "Eine Münze wird 3-mal geworfen. P(3× Kopf)?", Type: "text_input", CorrectAnswer: "1/8", Explanation: "P = (1/2)³ = 1/8", XPReward: 15, Difficulty: "mittel"},
		{Grade: 8, Topic: "Potenzen", Question: "Was ergibt 5⁰?", Type: "text_input", CorrectAnswer: "1", Explanation: "Jede Zahl hoch 0 ist 1", XPReward: 5, Difficulty: "leicht"},
		{Grade: 8, Topic: "Potenzen", Question: "Was ergibt 2⁴ ÷ 2²?", Type: "text_input", CorrectAnswer: "4", Explanation: "2⁴ ÷ 2² = 2² = 4", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Quadratische Funktionen", Question: "Was ist der Scheitelpunkt von y = x² - 4x + 4?", Type: "text_input", CorrectAnswer: "(2,0)", Explanation: "y = (x-2)², Scheitelpunkt bei (2, 0)", XPReward: 20, Difficulty: "mittel"},
		{Grade: 9, Topic: "Quadratische Funktionen", Question: "Ist die Parabel y = -x² + 3 nach oben oder unten geöffnet?", Type: "multiple_choice", Options: []string{"Nach oben", "Nach unten"}, CorrectAnswer: "Nach unten", Explanation: "a = -1 < 0, also nach unten geöffnet", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Quadratische Gleichungen", Question: "Löse: x² - 9 = 0", Type: "text_input", CorrectAnswer: "±3", Explanation: "x² = 9 → x = ±3", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Quadratische Gleichungen", Question: "Löse: x² + 2x - 8 = 0", Type: "multiple_choice", Options: []string{"x = 2 oder x = -4", "x = -2 oder x = 4", "x = 1 oder x = -8"}, CorrectAnswer: "x = 2 oder x = -4", Explanation: "(x-2)(x+4) = 0", XPReward: 20, Difficulty: "mittel"},
		{Grade: 9, Topic: "Satz des Pythagoras", Question: "Ist ein Dreieck mit a=6, b=8, c=10 rechtwinklig?", Type: "multiple_choice", Options: []string{"Ja", "Nein"}, CorrectAnswer: "Ja", Explanation: "6² + 8² = 36 + 64 = 100 = 10²", XPReward: 15, Difficulty: "mittel"},
		{Grade: 9, Topic: "Satz des Pythagoras", Question: "Berechne die Diagonale d in einem Rechteck mit a=3 und b=4.", Type: "text_input", CorrectAnswer: "5", Explanation: "d² = 3² + 4² = 25, d = 5", XPReward: 15, Difficulty: "mittel"},
		{Grade: 9, Topic: "Wurzeln", Question: "Was ist √64?", Type: "text_input", CorrectAnswer: "8", Explanation: "8 × 8 = 64", XPReward: 5, Difficulty: "leicht"},
		{Grade: 9, Topic: "Wurzeln", Question: "Vereinfache √72.", Type: "text_input", CorrectAnswer: "6√2", Explanation: "√72 = √(36×2) = 6√2", XPReward: 15, Difficulty: "mittel"},
		{Grade: 9, Topic: "Ähnlichkeit", Question: "Zwei ähnliche Dreiecke haben Verhältnis 1:3. Wenn die kleine Fläche 4 cm² ist, wie groß ist die große?", Type: "text_input", CorrectAnswer: "36", Explanation: "Flächenverhältnis = 1²:3² = 1:9. 4 × 9 = 36 cm²", XPReward: 20, Difficulty: "schwer"},
		{Grade: 9, Topic: "Trigonometrie", Question: "Was ist sin(90°)?", Type: "text_input", CorrectAnswer: "1", Explanation: "sin(90°) = 1", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Trigonometrie", Question: "Was ist cos(0°)?", Type: "text_input", CorrectAnswer: "1", Explanation: "cos(0°) = 1", XPReward: 10, Difficulty: "leicht"},
		{Grade: 9, Topic: "Trigonometrie", Question: "tan(45°) = ?", Type: "text_input", CorrectAnswer: "1", Explanation: "tan(45°) = sin(45°)/cos(45°) = 1", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Exponentialfunktionen", Question: "Was ist 3⁻²?", Type: "text_input", CorrectAnswer: "1/9", Explanation: "3⁻² = 1/3² = 1/9", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Exponentialfunktionen", Question: "Löse: 3^x = 81", Type: "text_input", CorrectAnswer: "4", Explanation: "3⁴ = 81, also x = 4", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Logarithmen", Question: "Was ist log₁₀(1000)?", Type: "text_input", CorrectAnswer: "3", Explanation: "10³ = 1000", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Logarithmen", Question: "Was ist ln(e)?", Type: "text_input", CorrectAnswer: "1", Explanation: "ln(e) = 1", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Körperberechnungen", Question: "Volumen eines Zylinders mit r=3 cm und h=5 cm? (π ≈ 3,14)", Type: "text_input", CorrectAnswer: "141,3", Explanation: "V = πr²h = 3,14 × 9 × 5 = 141,3 cm³", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Körperberechnungen", Question: "Oberfläche eines Würfels mit a = 4 cm?", Type: "text_input", CorrectAnswer: "96", Explanation: "O = 6a² = 6 × 16 = 96 cm²", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Stochastik", Question: "Was ist der Erwartungswert bei n=10 und p=0,3?", Type: "text_input", CorrectAnswer: "3", Explanation: "E(X) = n × p = 10 × 0,3 = 3", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Stochastik", Question: "Was ist die Standardabweichung wenn Varianz = 16?", Type: "text_input", CorrectAnswer: "4", Explanation: "σ = √16 = 4", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Wachstum", Question: "K₀ = 500€ wächst mit 4% pro Jahr. K nach 1 Jahr?", Type: "text_input", CorrectAnswer: "520", Explanation: "K = 500 × 1,04 = 520€", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Wachstum", Question: "Halbwertszeit: Nach wie vielen HWZ ist 1/8 übrig?", Type: "text_input", CorrectAnswer: "3", Explanation: "1/2³ = 1/8, also 3 Halbwertszeiten", XPReward: 15, Difficulty: "mittel"},
		{Grade: 10, Topic: "Vektorrechnung", Question: "Berechne: 3 × (2, 4)", Type: "text_input", CorrectAnswer: "(6,12)", Explanation: "3 × (2,4) = (6, 12)", XPReward: 10, Difficulty: "leicht"},
		{Grade: 10, Topic: "Vektorrechnung", Question: "Was ist der Betrag von (6, 8)?", Type: "text_input", CorrectAnswer: "10", Explanation: "|v| = √(36+64) = √100 = 10", XPReward: 15, Difficulty: "mittel"},
	}
}

// NRWTasks returns the NRW-Hauptschule curriculum-aligned set.
func NRWTasks() []store.Task {
	return []store.Task{
		{Grade: 5, Topic: "Grundrechenarten", Question: "Du kaufst 3 Hefte für je 2,50 €. Wie viel bezahlst du?", Type: "text_input", CorrectAnswer: "7,50", Explanation: "3 × 2,50 € = 7,50 €", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Du hast 20 € und kaufst etwas für 13,75 €. Wie viel Wechselgeld bekommst du?", Type: "text_input", CorrectAnswer: "6,25", Explanation: "20 € - 13,75 € = 6,25 €", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Eine Klasse mit 24 Schülern wird in 4 gleiche Gruppen geteilt. Wie viele Schüler sind in jeder Gruppe?", Type: "text_input", CorrectAnswer: "6", Explanation: "24 ÷ 4 = 6 Schüler pro Gruppe", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Runde 4.567 auf Hunderter.", Type: "text_input", CorrectAnswer: "4600", Explanation: "4.567 → 4.600 (67 wird aufgerundet)", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Grundrechenarten", Question: "Was ist 125 × 8?", Type: "text_input", CorrectAnswer: "1000", Explanation: "125 × 8 = 1000", XPReward: 10, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Einheiten", Question: "Wie viele Zentimeter sind 2,5 Meter?", Type: "text_input", CorrectAnswer: "250", Explanation: "2,5 m × 100 = 250 cm", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Einheiten", Question: "Wie viele Gramm sind 3 kg?", Type: "text_input", CorrectAnswer: "3000", Explanation: "3 kg × 1000 = 3000 g", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Einheiten", Question: "Wie viele Minuten sind 2 Stunden und 15 Minuten?", Type: "text_input", CorrectAnswer: "135", Explanation: "2 × 60 + 15 = 135 Minuten", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Einheiten", Question: "Wandle 4500 m in km um.", Type: "text_input", CorrectAnswer: "4,5", Explanation: "4500 m ÷ 1000 = 4,5 km", XPReward: 10, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Einheiten", Question: "Ein Film dauert 95 Minuten. Wie viele Stunden und Minuten sind das?", Type: "multiple_choice", Options: []string{"1 Stunde 25 Minuten", "1 Stunde 35 Minuten", "1 Stunde 45 Minuten", "2 Stunden 5 Minuten"}, CorrectAnswer: "1 Stunde 35 Minuten", Explanation: "95 ÷ 60 = 1 Rest 35", XPReward: 10, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Berechne den Umfang eines Quadrats mit Seitenlänge 7 cm.", Type: "text_input", CorrectAnswer: "28", Explanation: "U = 4 × a = 4 × 7 = 28 cm", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Ein Rechteck hat die Seiten 5 cm und 3 cm. Wie groß ist die Fläche?", Type: "text_input", CorrectAnswer: "15", Explanation: "A = a × b = 5 × 3 = 15 cm²", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Wie viele Ecken hat ein Dreieck?", Type: "multiple_choice", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: "3", Explanation: "Ein Dreieck hat 3 Ecken.", XPReward: 5, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Geometrie Grundlagen", Question: "Berechne den Umfang eines Rechtecks mit a = 8 cm und b = 5 cm.", Type: "text_input", CorrectAnswer: "26", Explanation: "U = 2 × (a + b) = 2 × (8 + 5) = 26 cm", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Wie viel ist 1/4 von 20?", Type: "text_input", CorrectAnswer: "5", Explanation: "20 ÷ 4 = 5", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Welcher Bruch ist größer: 1/2 oder 1/3?", Type: "multiple_choice", Options: []string{"1/2", "1/3", "Beide gleich"}, CorrectAnswer: "1/2", Explanation: "1/2 = 0,5 und 1/3 ≈ 0,33. Also ist 1/2 größer.", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Brüche einführen", Question: "Ein Pizza wird in 8 Stücke geteilt. Du isst 3 Stücke. Welchen Bruchteil hast du gegessen?", Type: "text_input", CorrectAnswer: "3/8", Explanation: "3 von 8 Stücken = 3/8", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Dezimalzahlen", Question: "Was ergibt 2,4 + 1,8?", Type: "text_input", CorrectAnswer: "4,2", Explanation: "2,4 + 1,8 = 4,2", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 5, Topic: "Dezimalzahlen", Question: "Ordne: 0,5 ; 0,35 ; 0,8. Welche Zahl ist am kleinsten?", Type: "multiple_choice", Options: []string{"0,5", "0,35", "0,8"}, CorrectAnswer: "0,35", Explanation: "0,35 < 0,5 < 0,8", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Was ergibt 2/3 + 1/6?", Type: "text_input", CorrectAnswer: "5/6", Explanation: "2/3 = 4/6, also 4/6 + 1/6 = 5/6", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Was ergibt 3/4 - 1/2?", Type: "text_input", CorrectAnswer: "1/4", Explanation: "3/4 - 2/4 = 1/4", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Berechne 2/5 × 10.", Type: "text_input", CorrectAnswer: "4", Explanation: "2/5 × 10 = 20/5 = 4", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Was ergibt 3/4 ÷ 2?", Type: "text_input", CorrectAnswer: "3/8", Explanation: "3/4 ÷ 2 = 3/4 × 1/2 = 3/8", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Bruchrechnung", Question: "Kürze den Bruch 12/18.", Type: "text_input", CorrectAnswer: "2/3", Explanation: "12/18 ÷ 6/6 = 2/3", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Prozentrechnung", Question: "Was sind 25% von 80?", Type: "text_input", CorrectAnswer: "20", Explanation: "25% = 1/4, also 80 ÷ 4 = 20", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Prozentrechnung", Question: "Ein Pullover kostet 40 €. Im Sale gibt es 20% Rabatt. Wie viel sparst du?", Type: "text_input", CorrectAnswer: "8", Explanation: "20% von 40 € = 8 €", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Prozentrechnung", Question: "Was sind 10% von 350?", Type: "text_input", CorrectAnswer: "35", Explanation: "350 ÷ 10 = 35", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Prozentrechnung", Question: "Du hast 15 von 20 Aufgaben richtig. Wie viel Prozent ist das?", Type: "text_input", CorrectAnswer: "75", Explanation: "15/20 = 0,75 = 75%", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Flächen und Umfang", Question: "Berechne die Fläche eines Dreiecks mit Grundseite 8 cm und Höhe 6 cm.", Type: "text_input", CorrectAnswer: "24", Explanation: "A = (g × h) / 2 = (8 × 6) / 2 = 24 cm²", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Flächen und Umfang", Question: "Ein Parallelogramm hat die Grundseite 10 cm und die Höhe 4 cm. Wie groß ist die Fläche?", Type: "text_input", CorrectAnswer: "40", Explanation: "A = g × h = 10 × 4 = 40 cm²", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Negative Zahlen", Question: "Was ergibt 5 - 8?", Type: "text_input", CorrectAnswer: "-3", Explanation: "5 - 8 = -3", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Negative Zahlen", Question: "Die Temperatur ist -5°C. Sie steigt um 12°C. Wie warm ist es jetzt?", Type: "text_input", CorrectAnswer: "7", Explanation: "-5 + 12 = 7°C", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 6, Topic: "Negative Zahlen", Question: "Was ergibt (-4) + (-6)?", Type: "text_input", CorrectAnswer: "-10", Explanation: "Zwei negative Zahlen addieren: -4 + (-6) = -10", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-3) × (-4)?", Type: "text_input", CorrectAnswer: "12", Explanation: "Minus mal Minus = Plus: -3 × -4 = 12", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-20) ÷ 5?", Type: "text_input", CorrectAnswer: "-4", Explanation: "-20 ÷ 5 = -4", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Was ergibt (-7) × 3?", Type: "text_input", CorrectAnswer: "-21", Explanation: "-7 × 3 = -21", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Rationale Zahlen", Question: "Ordne: -5, 2, -1, 0. Von klein nach groß:", Type: "multiple_choice", Options: []string{"-5, -1, 0, 2", "-1, -5, 0, 2", "0, -1, -5, 2", "2, 0, -1, -5"}, CorrectAnswer: "-5, -1, 0, 2", Explanation: "-5 < -1 < 0 < 2", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Gleichungen", Question: "Löse: x + 7 = 15", Type: "text_input", CorrectAnswer: "8", Explanation: "x = 15 - 7 = 8", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Gleichungen", Question: "Löse: 3x = 21", Type: "text_input", CorrectAnswer: "7", Explanation: "x = 21 ÷ 3 = 7", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Gleichungen", Question: "Löse: 2x + 5 = 17", Type: "text_input", CorrectAnswer: "6", Explanation: "2x = 12, x = 6", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Gleichungen", Question: "Löse: x/4 = 8", Type: "text_input", CorrectAnswer: "32", Explanation: "x = 8 × 4 = 32", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Gleichungen", Question: "Löse: 5x - 3 = 22", Type: "text_input", CorrectAnswer: "5", Explanation: "5x = 25, x = 5", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Proportionalität", Question: "3 Äpfel kosten 1,50 €. Was kosten 9 Äpfel?", Type: "text_input", CorrectAnswer: "4,50", Explanation: "9 ist 3× so viel wie 3, also 3 × 1,50 = 4,50 €", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Proportionalität", Question: "Ein Auto fährt 60 km in 1 Stunde. Wie weit fährt es in 2,5 Stunden?", Type: "text_input", CorrectAnswer: "150", Explanation: "60 × 2,5 = 150 km", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Proportionalität", Question: "5 Arbeiter brauchen 10 Tage. Wie lange brauchen 10 Arbeiter?", Type: "text_input", CorrectAnswer: "5", Explanation: "Antiproportional: doppelte Arbeiter = halbe Zeit: 10 ÷ 2 = 5 Tage", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Prozentrechnung", Question: "Ein Fahrrad kostet 250 €. Es wird um 20% teurer. Was ist der neue Preis?", Type: "text_input", CorrectAnswer: "300", Explanation: "20% von 250 = 50, also 250 + 50 = 300 €", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 7, Topic: "Prozentrechnung", Question: "Von 500 € Gehalt werden 19% Steuern abgezogen. Wie viel bleibt übrig?", Type: "text_input", CorrectAnswer: "405", Explanation: "19% von 500 = 95, also 500 - 95 = 405 €", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Terme", Question: "Vereinfache: 3a + 5a", Type: "text_input", CorrectAnswer: "8a", Explanation: "3a + 5a = 8a (gleiche Variablen addieren)", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Terme", Question: "Vereinfache: 4x - 2x + 5", Type: "text_input", CorrectAnswer: "2x + 5", Explanation: "4x - 2x = 2x, also 2x + 5", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Terme", Question: "Multipliziere aus: 3(x + 4)", Type: "text_input", CorrectAnswer: "3x + 12", Explanation: "3 × x + 3 × 4 = 3x + 12", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Terme", Question: "Klammer aus: 6x + 12", Type: "text_input", CorrectAnswer: "6(x + 2)", Explanation: "GGT ist 6: 6x + 12 = 6(x + 2)", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Terme", Question: "Was ist (2x)²?", Type: "text_input", CorrectAnswer: "4x²", Explanation: "(2x)² = 2² × x² = 4x²", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Lineare Gleichungen", Question: "Löse: 3x + 2 = 5x - 4", Type: "text_input", CorrectAnswer: "3", Explanation: "3x - 5x = -4 - 2, also -2x = -6, x = 3", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Lineare Gleichungen", Question: "Löse: 2(x - 3) = 10", Type: "text_input", CorrectAnswer: "8", Explanation: "2x - 6 = 10, 2x = 16, x = 8", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Kreis", Question: "Berechne den Umfang eines Kreises mit r = 7 cm. (π ≈ 3,14)", Type: "text_input", CorrectAnswer: "43,96", Explanation: "U = 2πr = 2 × 3,14 × 7 = 43,96 cm", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Kreis", Question: "Berechne die Fläche eines Kreises mit r = 5 cm. (π ≈ 3,14)", Type: "text_input", CorrectAnswer: "78,5", Explanation: "A = πr² = 3,14 × 25 = 78,5 cm²", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Satz des Pythagoras", Question: "Ein rechtwinkliges Dreieck hat die Katheten a=3cm und b=4cm. Wie lang ist die Hypotenuse c?", Type: "text_input", CorrectAnswer: "5", Explanation: "c² = a² + b² = 9 + 16 = 25, c = 5 cm", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 8, Topic: "Satz des Pythagoras", Question: "Die Hypotenuse ist 13 cm, eine Kathete ist 5 cm. Wie lang ist die andere Kathete?", Type: "text_input", CorrectAnswer: "12", Explanation: "b² = c² - a² = 169 - 25 = 144, b = 12 cm", XPReward: 20, Difficulty: "schwer", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Lineare Funktionen", Question: "f(x) = 2x + 3. Was ist f(4)?", Type: "text_input", CorrectAnswer: "11", Explanation: "f(4) = 2×4 + 3 = 8 + 3 = 11", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Lineare Funktionen", Question: "Welche Steigung hat die Gerade y = 3x - 2?", Type: "text_input", CorrectAnswer: "3", Explanation: "Bei y = mx + n ist m die Steigung. Hier m = 3", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Lineare Funktionen", Question: "Wo schneidet y = 2x + 6 die y-Achse?", Type: "text_input", CorrectAnswer: "6", Explanation: "y-Achsenabschnitt ist der Wert für x=0: y = 6", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Lineare Funktionen", Question: "Bestimme die Nullstelle von f(x) = 4x - 8", Type: "text_input", CorrectAnswer: "2", Explanation: "0 = 4x - 8, 4x = 8, x = 2", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Zinsrechnung", Question: "Du legst 1000 € für 1 Jahr zu 3% Zinsen an. Wie viel Zinsen bekommst du?", Type: "text_input", CorrectAnswer: "30", Explanation: "Z = K × p / 100 = 1000 × 3 / 100 = 30 €", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Zinsrechnung", Question: "Du legst 500 € für 6 Monate zu 4% Zinsen an. Wie viel Zinsen bekommst du?", Type: "text_input", CorrectAnswer: "10", Explanation: "Z = 500 × 4 × 6 / (100 × 12) = 10 €", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Zinsrechnung", Question: "2000 € werden zu 2,5% verzinst. Wie viel hast du nach 1 Jahr?", Type: "text_input", CorrectAnswer: "2050", Explanation: "Zinsen: 2000 × 2,5 / 100 = 50 €. Gesamt: 2050 €", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Quadratische Gleichungen", Question: "Löse: x² = 25", Type: "multiple_choice", Options: []string{"x = 5", "x = -5", "x = 5 oder x = -5", "x = 25"}, CorrectAnswer: "x = 5 oder x = -5", Explanation: "√25 = ±5, also x = 5 oder x = -5", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Quadratische Gleichungen", Question: "Löse: x² - 9 = 0", Type: "multiple_choice", Options: []string{"x = 3", "x = -3", "x = 3 oder x = -3", "x = 9"}, CorrectAnswer: "x = 3 oder x = -3", Explanation: "x² = 9, also x = ±3", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 9, Topic: "Sachaufgaben", Question: "Ein Handyvertrag kostet 15 € Grundgebühr plus 0,10 € pro SMS. Wie viel zahlst du bei 50 SMS?", Type: "text_input", CorrectAnswer: "20", Explanation: "15 + 50 × 0,10 = 15 + 5 = 20 €", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Quadratische Funktionen", Question: "f(x) = x² - 4. Was ist f(3)?", Type: "text_input", CorrectAnswer: "5", Explanation: "f(3) = 3² - 4 = 9 - 4 = 5", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Quadratische Funktionen", Question: "Wo ist der Scheitelpunkt von f(x) = x²?", Type: "multiple_choice", Options: []string{"(0,0)", "(1,1)", "(0,1)", "(1,0)"}, CorrectAnswer: "(0,0)", Explanation: "Bei f(x) = x² ist der Scheitelpunkt bei (0,0)", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Quadratische Funktionen", Question: "Bestimme die Nullstellen von f(x) = x² - 16", Type: "multiple_choice", Options: []string{"x = 4", "x = -4", "x = 4 und x = -4", "keine"}, CorrectAnswer: "x = 4 und x = -4", Explanation: "x² = 16, also x = ±4", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Trigonometrie", Question: "In einem rechtwinkligen Dreieck: sin(α) = Gegenkathete / ?", Type: "multiple_choice", Options: []string{"Ankathete", "Hypotenuse", "Gegenkathete", "Keine"}, CorrectAnswer: "Hypotenuse", Explanation: "sin(α) = Gegenkathete / Hypotenuse", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Trigonometrie", Question: "cos(60°) = ?", Type: "multiple_choice", Options: []string{"0", "0,5", "1", "√3/2"}, CorrectAnswer: "0,5", Explanation: "cos(60°) = 0,5", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Trigonometrie", Question: "tan(45°) = ?", Type: "text_input", CorrectAnswer: "1", Explanation: "tan(45°) = sin(45°)/cos(45°) = 1", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Wahrscheinlichkeit", Question: "Ein Würfel wird geworfen. Wie groß ist die Wahrscheinlichkeit für eine 6?", Type: "text_input", CorrectAnswer: "1/6", Explanation: "1 günstig von 6 möglich = 1/6", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Wahrscheinlichkeit", Question: "In einer Urne sind 3 rote und 7 blaue Kugeln. Wie groß ist P(rot)?", Type: "text_input", CorrectAnswer: "0,3", Explanation: "P(rot) = 3/10 = 0,3 oder 30%", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Wahrscheinlichkeit", Question: "Eine Münze wird 2 Mal geworfen. Wie groß ist P(2× Kopf)?", Type: "text_input", CorrectAnswer: "0,25", Explanation: "P = 0,5 × 0,5 = 0,25 oder 25%", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Körper", Question: "Berechne das Volumen eines Quaders mit a=4cm, b=3cm, c=5cm.", Type: "text_input", CorrectAnswer: "60", Explanation: "V = a × b × c = 4 × 3 × 5 = 60 cm³", XPReward: 10, Difficulty: "leicht", Curriculum: "NRW-Hauptschule"},
		{Grade: 10, Topic: "Körper", Question: "Berechne das Volumen eines Zylinders mit r=3cm und h=10cm. (π≈3,14)", Type: "text_input", CorrectAnswer: "282,6", Explanation: "V = π × r² × h = 3,14 × 9 × 10 = 282,6 cm³", XPReward: 15, Difficulty: "mittel", Curriculum: "NRW-Hauptschule"},
	}
}
